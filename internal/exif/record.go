// Package exif turns the human-readable metadata dump of one image file
// into a structured Record. The dump is the "Key : Value" text ExifTool
// prints; the parser never touches binary metadata.
package exif

// Record holds the metadata extracted from one image file.
//
// Optional fields use their zero value when the source text had no usable
// entry. A string field is always non-empty and fully normalized when set,
// and ISO is always positive when set, so the zero value cannot collide
// with a real reading.
type Record struct {
	// SourceID identifies the file the record came from, usually the path
	// relative to the scanned directory. Opaque to parsing and statistics.
	SourceID string `json:"source_id" parquet:"source_id"`

	Camera string `json:"camera,omitempty" parquet:"camera,optional"`

	// Lens keeps the original casing as found in the dump. Canonical
	// display labels are chosen later, over the whole batch.
	Lens string `json:"lens,omitempty" parquet:"lens,optional"`

	ISO int `json:"iso,omitempty" parquet:"iso,optional"`

	// ShutterSpeed is stored verbatim, e.g. "1/250" or "2".
	ShutterSpeed string `json:"shutter_speed,omitempty" parquet:"shutter_speed,optional"`

	// Aperture is normalized to "f/<number>", e.g. "f/2.8".
	Aperture string `json:"aperture,omitempty" parquet:"aperture,optional"`

	// FocalLength is normalized to "<number>mm"; whole values drop the
	// decimal ("37mm"), others keep exactly one digit ("18.5mm").
	FocalLength string `json:"focal_length,omitempty" parquet:"focal_length,optional"`
}
