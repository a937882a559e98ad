package collector_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/context-dumper/internal/collector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBytes(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestIsBinary(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name   string
		data   []byte
		binary bool
	}{
		{name: "plain text", data: []byte("hello world\n"), binary: false},
		{name: "empty file", data: nil, binary: false},
		{name: "utf8 text", data: []byte("héllo wörld ☃\n"), binary: false},
		{name: "null byte", data: []byte{'a', 0x00, 'b'}, binary: true},
		{name: "invalid utf8", data: []byte{0xff, 0xfe, 0x41}, binary: true},
		{name: "null beyond prefix ignored", data: append(bytes.Repeat([]byte{'a'}, 1024), 0x00), binary: false},
		{name: "null inside prefix", data: append(bytes.Repeat([]byte{'a'}, 1023), 0x00), binary: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeBytes(t, tmp, "probe", tt.data)
			assert.Equal(t, tt.binary, collector.IsBinary(path))
		})
	}
}

func TestIsBinaryUnreadableFile(t *testing.T) {
	tmp := t.TempDir()
	assert.True(t, collector.IsBinary(filepath.Join(tmp, "does-not-exist")),
		"unreadable files are treated as binary")
}

func TestIsBinaryTruncatedRuneAtSniffBoundary(t *testing.T) {
	tmp := t.TempDir()
	// 1023 ASCII bytes followed by the first byte of a multi-byte rune:
	// the sniffed prefix is not valid UTF-8 even though the whole file is.
	data := append(bytes.Repeat([]byte{'a'}, 1023), []byte("é")...)
	path := writeBytes(t, tmp, "boundary", data)
	assert.True(t, collector.IsBinary(path))
}
