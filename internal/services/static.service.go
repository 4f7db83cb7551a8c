package services

import (
	"embed"
	"io/fs"
)

//go:embed extras
var extrasFS embed.FS

// LoadExtraFiles returns the statically bundled snippet files as a
// path -> content map. The set is fixed for the lifetime of the process.
func LoadExtraFiles() (map[string]string, error) {
	extras := make(map[string]string)

	err := fs.WalkDir(extrasFS, "extras", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		data, err := extrasFS.ReadFile(path)
		if err != nil {
			return err
		}
		extras[path] = string(data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return extras, nil
}
