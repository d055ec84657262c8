package recscan

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestRecordMarshal(t *testing.T) {
	is := is.New(t)
	r := Record{Number: -2, Weight: 1.5}

	raw, err := r.MarshalBinary()
	is.NoErr(err)
	is.Equal(len(raw), RecordLength)
	// -2 little endian, then 1.5f = 0x3FC00000
	is.Equal(raw, []byte{0xFE, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0xC0, 0x3F})
}

func TestRecordUnmarshal(t *testing.T) {
	is := is.New(t)
	raw := []byte{0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0xE8, 0x40}

	r := Record{}
	is.NoErr(r.UnmarshalBinary(raw))
	is.Equal(r.Number, int32(20))
	is.Equal(r.Weight, float32(7.25))
}

func TestRecordUnmarshalShort(t *testing.T) {
	is := is.New(t)
	r := Record{}
	err := r.UnmarshalBinary([]byte{1, 2, 3})
	is.True(errors.Is(err, ErrShortRecord))
}

func TestRecordUnmarshalExtreme(t *testing.T) {
	is := is.New(t)
	in := Record{Number: math.MinInt32, Weight: math.MaxFloat32}
	raw, err := in.MarshalBinary()
	is.NoErr(err)

	out := Record{}
	is.NoErr(out.UnmarshalBinary(raw))
	is.Equal(out, in)
}

func TestRecordString(t *testing.T) {
	is := is.New(t)
	is.Equal(Record{}.String(), "00")
	is.Equal(Record{Number: 20, Weight: 7.25}.String(), "207.25")
	is.Equal(Record{Number: 3, Weight: 100}.String(), "3100")
	is.Equal(Record{Number: -1, Weight: 1234567}.String(), "-11.23457e+06")
	is.Equal(Record{Number: 7, Weight: 0.1}.String(), "70.1")
	is.Equal(Record{Number: 4, Weight: 0.00001}.String(), "41e-05")
	is.Equal(Record{Number: 3, Weight: float32(math.Inf(1))}.String(), "3inf")
	is.Equal(Record{Number: 3, Weight: float32(math.Inf(-1))}.String(), "3-inf")
	is.Equal(Record{Number: 3, Weight: float32(math.NaN())}.String(), "3nan")
}
