package adapter

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/deflake/internal/model"
)

// ClassWriter persists class source. Writing the same class again overwrites
// the previous version.
type ClassWriter interface {
	Write(packageName, className, source string) (m.Path, error)
}

// LocalClassWriter writes <root>/<package dirs>/<Class>.java.
type LocalClassWriter struct {
	fs   FSAdapter
	root m.Path
}

// NewLocalClassWriter constructs a writer rooted at root.
func NewLocalClassWriter(fs FSAdapter, root m.Path) *LocalClassWriter {
	return &LocalClassWriter{fs: fs, root: root}
}

// Write stores source and returns the file location.
func (w *LocalClassWriter) Write(packageName, className, source string) (m.Path, error) {
	if className == "" {
		return "", fmt.Errorf("class name is required")
	}

	elems := []string{string(w.root)}
	if packageName != "" {
		elems = append(elems, strings.Split(packageName, ".")...)
	}

	elems = append(elems, className+".java")
	path := w.fs.JoinPath(elems...)

	if err := w.fs.WriteFile(path, []byte(source), 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return m.Path(filepath.Clean(string(path))), nil
}
