package recscan

import (
	"encoding/binary"
	"math"
)

func decodeInt32(_raw []byte) int32 {
	return int32(binary.LittleEndian.Uint32(_raw))
}

func decodeFloat32(_raw []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(_raw))
}

func encodeInt32(_raw []byte, value int32) {
	binary.LittleEndian.PutUint32(_raw, uint32(value))
}

func encodeFloat32(_raw []byte, value float32) {
	binary.LittleEndian.PutUint32(_raw, math.Float32bits(value))
}
