package robot

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ConvexSuffix is the file name suffix of convex hull files.
const ConvexSuffix = "-ch.txt"

// ConvexHull associates a body with the file holding its convex hull.
type ConvexHull struct {
	Body string
	Path string
}

// BodyFromConvexFile recovers the body name from a hull file name by removing
// the last occurrence of ConvexSuffix. ok is false when the name does not
// contain the suffix.
func BodyFromConvexFile(filename string) (body string, ok bool) {
	off := strings.LastIndex(filename, ConvexSuffix)
	if off < 0 {
		return "", false
	}
	return filename[:off] + filename[off+len(ConvexSuffix):], true
}

// LoadConvexHulls registers every hull file found in dir. A missing directory
// is not an error. Files without the hull suffix are ignored; a file whose
// name is only the suffix is rejected.
func (m *Module) LoadConvexHulls(dir string) (int, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "stat convex directory")
	}
	if !info.IsDir() {
		return 0, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrap(err, "read convex directory")
	}
	if m.ConvexHulls == nil {
		m.ConvexHulls = make(map[string]ConvexHull)
	}

	n := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		body, ok := BodyFromConvexFile(e.Name())
		if !ok {
			continue
		}
		if body == "" {
			return n, errors.Errorf("convex file %q has no body name", filepath.Join(dir, e.Name()))
		}
		m.ConvexHulls[body] = ConvexHull{Body: body, Path: filepath.Join(dir, e.Name())}
		n++
	}
	return n, nil
}
