package murmur3

import (
	"io"
	"os"
)

// fileChunkSize is a tuning choice only; the digest does not depend on it.
const fileChunkSize = 65536

// SumReader hashes everything readable from r, feeding it to a streaming
// hasher in fixed-size chunks. Read errors are returned unchanged; there is
// no partial digest on failure.
func SumReader(r io.Reader, seed uint32) (uint64, uint64, error) {
	d := NewWithSeed(seed)
	buf := make([]byte, fileChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = d.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, err
		}
	}
	h1, h2 := d.Sum128()
	return h1, h2, nil
}

// SumFile hashes the contents of the file at the given path without loading
// it into memory at once.
func SumFile(path string, seed uint32) (uint64, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	return SumReader(f, seed)
}
