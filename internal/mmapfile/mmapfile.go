// Package mmapfile provides read-only memory-mapped access to a file.
// The mapping is shared and never written; page faults on access are
// the only I/O the mapped bytes incur.
package mmapfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only memory-mapped file. The byte slice returned by
// Bytes stays valid until Close.
type File struct {
	file *os.File
	data []byte
}

// Open maps path read-only. A zero-length file is served as an empty
// slice without a mapping, since mmap rejects zero-length regions.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	size := stat.Size()
	if size == 0 {
		return &File{file: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to mmap %s: %w", path, err)
	}

	return &File{file: f, data: data}, nil
}

// Bytes returns the mapped contents. The slice must not be modified and
// must not be used after Close.
func (m *File) Bytes() []byte { return m.data }

// Len returns the mapped size in bytes.
func (m *File) Len() int { return len(m.data) }

// Close unmaps the file and closes the descriptor.
func (m *File) Close() error {
	var firstErr error
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			firstErr = fmt.Errorf("failed to munmap: %w", err)
		}
		m.data = nil
	}
	if err := m.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
