// Package checksum computes content digests for uploaded thesis
// documents. The digest identifies a document version: it is computed
// when a document is attached or replaced and never on metadata edits.
package checksum

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
)

// Stream computes the hex-encoded SHA-1 digest of everything readable
// from r. The stream is consumed exactly once.
func Stream(r io.Reader) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to read document content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Tee wraps r so that every byte read through the returned reader is
// also hashed. The digest function reports the hex-encoded SHA-1 of
// the bytes consumed so far; call it after the reader is drained to
// digest the full stream in a single pass.
func Tee(r io.Reader) (reader io.Reader, digest func() string) {
	h := sha1.New()
	return io.TeeReader(r, h), func() string {
		return hex.EncodeToString(h.Sum(nil))
	}
}

// Bytes computes the hex-encoded SHA-1 digest of b.
func Bytes(b []byte) string {
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
