package encoding

import (
	"encoding/binary"
	"strings"
)

// FromBytes64 turns []byte into int64
func FromBytes64(data []byte) int64 {
	return int64(binary.BigEndian.Uint64(data))
}

// ToBytes64 turns an int64 into []byte len 8
func ToBytes64(in int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(in))
	return buf
}

// CellKey packs integer cell co-ords into a string suitable for use as a
// map key. Each axis takes 8 bytes, so keys of different dimensionality
// never collide with each other.
func CellKey(coords []int64) string {
	var b strings.Builder
	b.Grow(8 * len(coords))
	buf := make([]byte, 8)
	for _, c := range coords {
		binary.BigEndian.PutUint64(buf, uint64(c))
		b.Write(buf)
	}
	return b.String()
}

// FromCellKey unpacks a key made by CellKey.
// Trailing bytes that don't make a full axis are ignored.
func FromCellKey(key string) []int64 {
	data := []byte(key)
	out := make([]int64, 0, len(data)/8)
	for i := 0; i+8 <= len(data); i += 8 {
		out = append(out, FromBytes64(data[i:i+8]))
	}
	return out
}
