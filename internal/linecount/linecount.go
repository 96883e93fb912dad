// Package linecount counts lines in file content.
package linecount

import (
	"bytes"
	"io"
)

// CountBytes returns the number of lines in data. A final line without a
// trailing newline still counts; empty content has zero lines.
func CountBytes(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	count := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		count++
	}
	return count
}

// Count reads r to the end and returns its line count with the same rules as
// CountBytes
func Count(r io.Reader) (int, error) {
	var (
		buf   [32 * 1024]byte
		count int
		last  byte
		seen  bool
	)
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			seen = true
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if seen && last != '\n' {
		count++
	}
	return count, nil
}
