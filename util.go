package murmur3

import (
	"encoding/binary"
)

// blockWords reads the two 64-bit little-endian words of the 16-byte block
// at the start of p. Explicit decodes keep unaligned offsets safe on every
// platform.
func blockWords(p []byte) (uint64, uint64) {
	first := binary.LittleEndian.Uint64(p[:8])
	second := binary.LittleEndian.Uint64(p[8:16])
	return first, second
}
