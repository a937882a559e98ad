package collector

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

// sniffLen is how many leading bytes are inspected to classify a file.
const sniffLen = 1024

// IsBinary reports whether the file at path looks like binary data.
// A NUL byte or an invalid UTF-8 sequence in the first 1024 bytes
// classifies the file as binary; unreadable files are treated as
// binary. No error ever propagates past this boundary.
func IsBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}
	chunk := buf[:n]

	if bytes.IndexByte(chunk, 0) >= 0 {
		return true
	}
	// A multi-byte rune truncated at the sniff boundary also fails
	// validation and counts as binary, matching the decode-the-prefix
	// contract.
	return !utf8.Valid(chunk)
}
