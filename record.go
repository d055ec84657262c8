package recscan

import (
	"fmt"
	"math"
	"strconv"
)

const (
	lengthOfNumberField = 4
	lengthOfWeightField = 4

	// RecordLength is the size of one record on disk in bytes
	RecordLength = lengthOfNumberField + lengthOfWeightField
)

// Record is a single entry of a record file (8 byte).
type Record struct {
	// Number is stored first as a little endian int32 (4 byte)
	Number int32
	// Weight is stored second as a little endian IEEE-754 float32 (4 byte)
	Weight float32
}

// MarshalBinary encodes the record into its on disk layout.
func (r Record) MarshalBinary() ([]byte, error) {
	_raw := make([]byte, RecordLength)
	r.encode(_raw)
	return _raw, nil
}

// UnmarshalBinary decodes the first RecordLength bytes of _raw into the record.
func (r *Record) UnmarshalBinary(_raw []byte) error {
	if len(_raw) < RecordLength {
		return fmt.Errorf("got %d bytes: %w", len(_raw), ErrShortRecord)
	}
	r.decode(_raw)
	return nil
}

func (r Record) encode(_raw []byte) {
	encodeInt32(_raw[:lengthOfNumberField], r.Number)
	encodeFloat32(_raw[lengthOfNumberField:RecordLength], r.Weight)
}

func (r *Record) decode(_raw []byte) {
	r.Number = decodeInt32(_raw[:lengthOfNumberField])
	r.Weight = decodeFloat32(_raw[lengthOfNumberField:RecordLength])
}

// String returns the number immediately followed by the weight, e.g. "207.25".
func (r Record) String() string {
	return strconv.FormatInt(int64(r.Number), 10) + formatWeight(r.Weight)
}

// formatWeight renders %g with 6 significant digits and lower case inf/nan,
// the format existing data.bin consumers print.
func formatWeight(weight float32) string {
	w := float64(weight)
	switch {
	case math.IsNaN(w):
		return "nan"
	case math.IsInf(w, 1):
		return "inf"
	case math.IsInf(w, -1):
		return "-inf"
	}
	return strconv.FormatFloat(w, 'g', 6, 32)
}
