// Package jsonfile reads movies and reviews from JSON documents.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FromPath splits an OS file path into a filesystem rooted at its directory
// and the file name inside it.
func FromPath(path string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(path)), filepath.Base(path)
}

func decodeFile(fsys fs.FS, name string, v interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("jsonfile: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("jsonfile: decode %s: %w", name, err)
	}
	return nil
}

func missingKey(file string, index int, key string) error {
	return fmt.Errorf("jsonfile: %s: entry %d: missing required key %q", file, index, key)
}
