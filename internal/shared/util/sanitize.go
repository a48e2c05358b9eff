package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName is returned for download names that could escape the store.
var ErrInvalidFileName = errors.New("invalid file name")

// DownloadFileName validates a client-supplied PDF name and appends ".pdf" when missing.
func DownloadFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" || strings.Contains(s, "..") || strings.HasPrefix(s, "/") || strings.ContainsAny(s, `/\`) {
		return "", ErrInvalidFileName
	}
	if !strings.HasSuffix(s, ".pdf") {
		s += ".pdf"
	}
	return s, nil
}
