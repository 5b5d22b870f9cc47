// Package loader implements the external "class resolver" collaborator
// the method area calls when a class isn't already loaded.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cogwheel/jayvee/internal/runtime"
)

// FileSystem searches an ordered list of classpath directories for
// "<name>.class", grounded on zserge/tojvm's VM.Class classpath walk
// (try each classpath entry in order, first hit wins).
type FileSystem struct {
	ClassPath []string
}

// New builds a FileSystem resolver over the given classpath directories.
func New(classPath []string) *FileSystem {
	return &FileSystem{ClassPath: classPath}
}

// Load implements runtime.Loader.
func (fs *FileSystem) Load(name string) ([]byte, error) {
	var lastErr error
	for _, dir := range fs.ClassPath {
		path := filepath.Join(dir, name+".class")
		b, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		return b, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("loader: %s not found on classpath: %w: %w", name, runtime.ErrClassNotFound, lastErr)
	}
	return nil, fmt.Errorf("loader: %s not found: %w", name, runtime.ErrClassNotFound)
}
