// Package filex contains small file-system helpers for the client.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) if missing and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// EnsureParentDir makes sure the directory holding path exists.
func EnsureParentDir(path string) error {
	_, err := EnsureDir(filepath.Dir(path))
	return err
}

// ReadUpload reads a file chosen by the user and returns its base name,
// its sniffed content type and its content.
func ReadUpload(path string) (name string, contentType string, content []byte, err error) {
	content, err = os.ReadFile(path)
	if err != nil {
		return "", "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	return filepath.Base(path), http.DetectContentType(content), content, nil
}

// WriteExport writes data to dir/name, creating dir, and returns the full path.
func WriteExport(dir, name string, data []byte) (string, error) {
	abs, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}
	p := filepath.Join(abs, name)
	if err := os.WriteFile(p, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", p, err)
	}
	return p, nil
}
