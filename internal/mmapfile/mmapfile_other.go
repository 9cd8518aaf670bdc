//go:build !unix

package mmapfile

import (
	"fmt"
	"os"
)

// Map reads filename into memory on platforms without mmap support. The
// cleanup function is a no-op, kept for API compatibility with the Unix
// version.
func Map(filename string) ([]byte, func(), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	return data, func() {}, nil
}
