package qoa

import "encoding/binary"

// readU64 reads 8 big-endian bytes from b starting at cursor,
// returning the value and the advanced cursor. The caller is
// responsible for checking that at least 8 bytes remain; readU64
// itself never fails.
func readU64(b []byte, cursor int) (uint64, int) {
	return binary.BigEndian.Uint64(b[cursor : cursor+8]), cursor + 8
}

// writeU64 writes v as 8 big-endian bytes into b starting at cursor,
// returning the advanced cursor. The caller is responsible for
// ensuring b has at least 8 bytes remaining from cursor.
func writeU64(v uint64, b []byte, cursor int) int {
	binary.BigEndian.PutUint64(b[cursor:cursor+8], v)
	return cursor + 8
}
