package murmur3

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randBytes(n int) []byte {
	data := make([]byte, n)
	rand.Read(data)
	return data
}

// randChunks splits data into consecutive chunks of random length, with the
// occasional empty chunk thrown in.
func randChunks(data []byte) [][]byte {
	var chunks [][]byte
	for len(data) > 0 {
		if rand.Intn(10) == 0 {
			chunks = append(chunks, nil)
			continue
		}
		n := rand.Intn(40) + 1
		if n > len(data) {
			n = len(data)
		}
		chunks = append(chunks, data[:n])
		data = data[n:]
	}
	return chunks
}

func TestStreamMatchesOneShot(t *testing.T) {
	rand.Seed(time.Now().UnixNano())

	inputs := [][]byte{
		nil,
		randBytes(1),
		randBytes(15),
		randBytes(16),
		randBytes(17),
		randBytes(31),
		randBytes(32),
		randBytes(1000),
		randBytes(5000),
		[]byte(randomdata.Paragraph()),
		[]byte(randomdata.SillyName()),
	}

	for _, data := range inputs {
		msg := fmt.Sprintf("while streaming %d bytes", len(data))
		want1, want2 := Sum128(data)

		for round := 0; round < 20; round++ {
			d := New()
			for _, chunk := range randChunks(data) {
				n, err := d.Write(chunk)
				require.NoError(t, err, msg)
				require.Equal(t, len(chunk), n, msg)
			}
			got1, got2 := d.Sum128()
			require.Equal(t, want1, got1, msg)
			require.Equal(t, want2, got2, msg)
		}
	}
}

func TestByteAtATime(t *testing.T) {
	rand.Seed(time.Now().UnixNano())

	for _, size := range []int{15, 16, 17, 31, 32, 100} {
		data := randBytes(size)
		want1, want2 := Sum128(data)

		d := New()
		for i := range data {
			d.Write(data[i : i+1])
		}
		got1, got2 := d.Sum128()
		assert.Equal(t, want1, got1, "byte-wise streaming of %d bytes", size)
		assert.Equal(t, want2, got2, "byte-wise streaming of %d bytes", size)
	}
}

func TestZeroLengthWrites(t *testing.T) {
	data := []byte("hello world")
	want1, want2 := Sum128(data)

	d := New()
	d.Write(nil)
	d.Write(data[:5])
	d.Write([]byte{})
	d.Write(data[5:])
	d.Write(nil)

	got1, got2 := d.Sum128()
	assert.Equal(t, want1, got1)
	assert.Equal(t, want2, got2)
}

func TestChunkCompletesBlockExactly(t *testing.T) {
	rand.Seed(time.Now().UnixNano())
	data := randBytes(48)
	want1, want2 := Sum128(data)

	// 7 pending bytes, then a chunk that tops the block up to exactly 16,
	// then the rest.
	d := New()
	d.Write(data[:7])
	d.Write(data[7:16])
	d.Write(data[16:])

	got1, got2 := d.Sum128()
	assert.Equal(t, want1, got1)
	assert.Equal(t, want2, got2)
}

func TestSumNonDestructive(t *testing.T) {
	a := []byte("some bytes that ")
	b := []byte("arrive later")

	d := New()
	d.Write(a)
	d1a, d1b := d.Sum128()
	d.Write(b)
	d2a, d2b := d.Sum128()

	wa1, wa2 := Sum128(a)
	assert.Equal(t, wa1, d1a)
	assert.Equal(t, wa2, d1b)

	wb1, wb2 := Sum128(append(append([]byte{}, a...), b...))
	assert.Equal(t, wb1, d2a)
	assert.Equal(t, wb2, d2b)

	// repeated reads do not disturb anything
	for i := 0; i < 3; i++ {
		r1, r2 := d.Sum128()
		assert.Equal(t, d2a, r1)
		assert.Equal(t, d2b, r2)
	}
}

func TestResetMatchesFresh(t *testing.T) {
	rand.Seed(time.Now().UnixNano())
	data := randBytes(100)

	d := NewWithSeed(7)
	d.Write([]byte("stale state to discard"))
	d.Reset()
	d.Write(data)
	got1, got2 := d.Sum128()

	want1, want2 := Sum128WithSeed(data, 7)
	assert.Equal(t, want1, got1)
	assert.Equal(t, want2, got2)
}

func TestSetSeedResets(t *testing.T) {
	data := []byte("hello world")

	d := New()
	d.Write([]byte("bytes under the old seed"))
	d.SetSeed(42)
	d.Write(data)
	got1, got2 := d.Sum128()

	want1, want2 := Sum128WithSeed(data, 42)
	assert.Equal(t, want1, got1)
	assert.Equal(t, want2, got2)
}

func TestSumAppends(t *testing.T) {
	d := New()
	d.Write([]byte("hello world"))
	h1, h2 := d.Sum128()

	sum := d.Sum(nil)
	require.Len(t, sum, 16)
	want := ToHex(h1, h2)
	assert.Equal(t, want, fmt.Sprintf("%x", sum))

	prefixed := d.Sum([]byte("prefix"))
	require.Len(t, prefixed, 6+16)
	assert.Equal(t, "prefix", string(prefixed[:6]))
	assert.Equal(t, sum, prefixed[6:])
}

func TestWriteString(t *testing.T) {
	d := New()
	n, err := d.WriteString("hello world")
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	want1, want2 := Sum128([]byte("hello world"))
	got1, got2 := d.Sum128()
	assert.Equal(t, want1, got1)
	assert.Equal(t, want2, got2)
}

func TestSizes(t *testing.T) {
	d := New()
	assert.Equal(t, 16, d.Size())
	assert.Equal(t, 16, d.BlockSize())
}
