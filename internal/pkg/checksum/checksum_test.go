package checksum

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream(t *testing.T) {
	sum, err := Stream(strings.NewReader("hello world"))
	require.NoError(t, err)
	// Known SHA-1 of "hello world".
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", sum)
}

func TestStreamEmpty(t *testing.T) {
	sum, err := Stream(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", sum)
}

func TestBytesMatchesStream(t *testing.T) {
	data := []byte("dissertation bytes")
	fromStream, err := Stream(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, fromStream, Bytes(data))
}

func TestTeeHashesWhileReading(t *testing.T) {
	reader, digest := Tee(strings.NewReader("hello world"))

	var stored strings.Builder
	_, err := io.Copy(&stored, reader)
	require.NoError(t, err)

	// The consumer sees the bytes untouched and the digest covers
	// exactly what was read.
	assert.Equal(t, "hello world", stored.String())
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", digest())
}

func TestStreamDetectsDifferingContent(t *testing.T) {
	a, err := Stream(strings.NewReader("version one"))
	require.NoError(t, err)
	b, err := Stream(strings.NewReader("version two"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
