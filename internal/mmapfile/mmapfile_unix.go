//go:build unix

// Package mmapfile maps whole files into memory as read-only byte slices.
//
// The parser wants the entire input addressable as one immutable buffer;
// mapping the file gets that without reading it up front, and the OS pages
// data in as the scan advances. On platforms without mmap the package
// falls back to reading the file into memory.
package mmapfile

import (
	"fmt"
	"os"
	"syscall"
)

// Map maps filename read-only and returns the mapped bytes together with a
// cleanup function that unmaps them. The slice must not be used after
// cleanup runs, and must never be written to.
func Map(filename string) ([]byte, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat file: %w", err)
	}

	size := stat.Size()
	if size == 0 {
		f.Close()
		return []byte{}, func() {}, nil
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("mmap file: %w", err)
	}

	// The mapping survives the descriptor, so the file can be closed now.
	f.Close()

	cleanup := func() {
		_ = syscall.Munmap(data)
	}
	return data, cleanup, nil
}
