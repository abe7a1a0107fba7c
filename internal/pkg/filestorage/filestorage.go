package filestorage

import "io"

// Storage defines the file storage capability the workflow depends on:
// store a byte stream under a declared name, re-read the same bytes
// later, and remove them when the document is replaced.
type Storage interface {
	// Save stores the stream in a single read and returns the storage
	// path the bytes can be read back from. Only the extension of
	// originalName contributes to the stored name.
	Save(file io.Reader, originalName string) (string, error)

	// Open re-reads previously stored bytes.
	Open(path string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an
	// error.
	Delete(path string) error
}
