// Package filesystem provides the DocumentLocator backed by the local filesystem.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

// Locator maps logical document names to absolute paths under a fixed base directory.
//
// The base directory is made absolute once, at construction. Resolve never touches
// the filesystem, so results do not depend on the working directory afterwards.
type Locator struct {
	baseDir string
}

// NewLocator creates a locator anchored at baseDir.
// A relative baseDir is interpreted against the current working directory.
func NewLocator(baseDir string) (*Locator, error) {
	if baseDir == "" {
		return nil, domain.NewValidationError("baseDir", baseDir, "must not be empty", domain.ErrInvalidBaseDir)
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, domain.NewValidationError("baseDir", baseDir, err.Error(), domain.ErrInvalidBaseDir)
	}

	return &Locator{baseDir: abs}, nil
}

// BaseDir returns the absolute base directory.
func (l *Locator) BaseDir() string {
	return l.baseDir
}

// Resolve joins fileName onto the base directory and cleans the result,
// collapsing any ".." segments. A malformed name still yields a valid path.
func (l *Locator) Resolve(fileName string) string {
	return filepath.Clean(filepath.Join(l.baseDir, filepath.FromSlash(fileName)))
}

// Locate resolves ref and checks whether a file exists at the resulting path.
// Directories do not count as documents.
func (l *Locator) Locate(ref domain.DocumentReference) domain.ResolvedDocument {
	path := l.Resolve(ref.Name)
	info, err := os.Stat(path)

	return domain.ResolvedDocument{
		Path:   path,
		Exists: err == nil && !info.IsDir(),
	}
}

// Verify Locator implements the DocumentLocator interface
var _ ports.DocumentLocator = (*Locator)(nil)
