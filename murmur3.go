/*
Package murmur3 provides a native implementation of the x64-128 variant of
Austin Appleby's MurmurHash3, a fast non-cryptographic hash function.

For more information on MurmurHash3, see the reference implementation at
https://github.com/aappleby/smhasher.

The hash is available both as a one-shot function over a byte slice and as an
incremental Hash128 that accepts input in chunks of any size. Every chunking
of the same bytes produces the same 128-bit digest.
*/
package murmur3

import (
	"fmt"
)

// Sum128 returns the 128-bit hash of data with seed 0.
func Sum128(data []byte) (uint64, uint64) {
	return Sum128WithSeed(data, 0)
}

// Sum128WithSeed returns the 128-bit hash of data. It is equivalent to
// writing data to a fresh Hash128 and calling Sum128, without the streaming
// bookkeeping.
func Sum128WithSeed(data []byte, seed uint32) (uint64, uint64) {
	h1, h2 := uint64(seed), uint64(seed)

	nblocks := len(data) / blockSize
	for i := 0; i < nblocks; i++ {
		k1, k2 := blockWords(data[i*blockSize:])
		h1, h2 = mixBlock(h1, h2, k1, k2)
	}

	return finalize(h1, h2, data[nblocks*blockSize:], uint64(len(data)))
}

// ToHex renders a digest pair as 32 lowercase hex digits: the 16 digits of
// the first word followed by the 16 digits of the second, zero-padded, no
// prefix.
func ToHex(h1, h2 uint64) string {
	return fmt.Sprintf("%016x%016x", h1, h2)
}
