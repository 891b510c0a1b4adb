package murmur3

import (
	"encoding/binary"
	"hash"
)

const (
	blockSize = 16
	tailSize  = blockSize - 1
)

// Make sure interfaces are correctly implemented.
var (
	_ hash.Hash = new(Hash128)
)

// Hash128 is an incremental Murmur3 x64-128 hasher. Input may be fed in
// chunks of any size, in any partitioning; the digest is always identical to
// hashing the whole input in one call.
//
// A Hash128 holds no heap state and must not be shared between goroutines
// without external synchronization.
type Hash128 struct {
	h1 uint64 // Unfinalized running hash part 1.
	h2 uint64 // Unfinalized running hash part 2.

	buf  [blockSize]byte // Pending bytes of an incomplete block.
	nbuf int             // Always total % 16 between calls.

	tail  [tailSize]byte // Last min(total, 15) bytes of all input.
	ntail int

	total uint64
	seed  uint32
}

// New returns a streaming 128-bit hasher with seed 0.
func New() *Hash128 {
	return new(Hash128)
}

// NewWithSeed returns a streaming 128-bit hasher using the given seed. Both
// accumulator halves start from the zero-extended seed.
func NewWithSeed(seed uint32) *Hash128 {
	d := new(Hash128)
	d.SetSeed(seed)
	return d
}

// Write adds more data to the running hash. It never fails; chunks of any
// length, including zero, are valid.
func (d *Hash128) Write(p []byte) (n int, err error) {
	n = len(p)
	if n == 0 {
		return 0, nil
	}
	d.total += uint64(n)

	data := p
	if d.nbuf > 0 {
		need := blockSize - d.nbuf
		if len(data) < need {
			// Still no complete block; the chunk only tops up the buffer.
			d.nbuf += copy(d.buf[d.nbuf:], data)
			d.pushTail(p)
			return n, nil
		}
		copy(d.buf[d.nbuf:], data[:need])
		k1, k2 := blockWords(d.buf[:])
		d.h1, d.h2 = mixBlock(d.h1, d.h2, k1, k2)
		d.nbuf = 0
		data = data[need:]
	}

	// Whole blocks are mixed straight from the chunk, no copying.
	nblocks := len(data) / blockSize
	for i := 0; i < nblocks; i++ {
		k1, k2 := blockWords(data[i*blockSize:])
		d.h1, d.h2 = mixBlock(d.h1, d.h2, k1, k2)
	}

	d.nbuf = copy(d.buf[:], data[nblocks*blockSize:])

	d.pushTail(p)
	return n, nil
}

// WriteString adds the bytes of s to the running hash.
func (d *Hash128) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// pushTail rolls the last-15-bytes window forward over the entire chunk,
// independently of block processing.
func (d *Hash128) pushTail(chunk []byte) {
	if len(chunk) >= tailSize {
		copy(d.tail[:], chunk[len(chunk)-tailSize:])
		d.ntail = tailSize
		return
	}
	if over := d.ntail + len(chunk) - tailSize; over > 0 {
		// Evict the oldest bytes to make room.
		copy(d.tail[:], d.tail[over:d.ntail])
		d.ntail -= over
	}
	d.ntail += copy(d.tail[d.ntail:], chunk)
}

// Sum128 returns the 128-bit hash of all bytes written so far. It does not
// modify the hasher; writing more data afterwards continues the stream.
func (d *Hash128) Sum128() (uint64, uint64) {
	tl := int(d.total % blockSize)
	return finalize(d.h1, d.h2, d.tail[d.ntail-tl:d.ntail], d.total)
}

// Sum appends the current hash to b and returns the resulting slice, first
// word then second, each big-endian.
func (d *Hash128) Sum(b []byte) []byte {
	h1, h2 := d.Sum128()
	var digest [blockSize]byte
	binary.BigEndian.PutUint64(digest[:8], h1)
	binary.BigEndian.PutUint64(digest[8:], h2)
	return append(b, digest[:]...)
}

// Reset restores the hasher to its initial state for the current seed.
func (d *Hash128) Reset() {
	d.h1 = uint64(d.seed)
	d.h2 = uint64(d.seed)
	d.nbuf = 0
	d.ntail = 0
	d.total = 0
}

// SetSeed changes the seed and resets the hasher. It is a full
// reinitialization, not a re-keying of the data already written.
func (d *Hash128) SetSeed(seed uint32) {
	d.seed = seed
	d.Reset()
}

func (d *Hash128) Size() int {
	return 16
}

func (d *Hash128) BlockSize() int {
	return blockSize
}
