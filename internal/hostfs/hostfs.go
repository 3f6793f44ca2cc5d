// internal/hostfs/hostfs.go

// Package hostfs reads single-value pseudo-files the way /proc and /sys
// expose them: one short text value, usually newline-terminated.
package hostfs

import (
	"os"
	"strconv"
	"strings"
)

// ReadTrimmed returns the file's contents with surrounding whitespace and
// the trailing newline removed.
func ReadTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadUint parses the file's contents as an unsigned integer.
func ReadUint(path string) (uint64, error) {
	s, err := ReadTrimmed(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(s, 10, 64)
}
