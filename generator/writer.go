package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/namabar/namabar-go/internal/fileutil"
)

// WriteFiles writes all generated files to the specified output directory.
// The directory is created if it doesn't exist. Each file is replaced
// atomically, so an interrupted run leaves the previous version in place.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	if len(r.Files) == 0 {
		return fmt.Errorf("generator: nothing to write")
	}
	for _, file := range r.Files {
		if filepath.Base(file.Name) != file.Name {
			return fmt.Errorf("generator: invalid file name %q: must not contain path separators", file.Name)
		}
	}

	if err := os.MkdirAll(outputDir, fileutil.DirMode); err != nil {
		return fmt.Errorf("generator: failed to create output directory: %w", err)
	}
	for _, file := range r.Files {
		if err := file.WriteFile(filepath.Join(outputDir, file.Name)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), fileutil.DirMode); err != nil {
		return fmt.Errorf("generator: failed to create directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to write file %s: %w", f.Name, err)
	}
	return nil
}
