package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
)

func TestNewLocator_EmptyBaseDir(t *testing.T) {
	locator, err := NewLocator("")
	assert.Nil(t, locator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidBaseDir))

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "baseDir", validationErr.Field)
}

func TestNewLocator_RelativeBaseDirBecomesAbsolute(t *testing.T) {
	locator, err := NewLocator(".")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(locator.BaseDir()))
	assert.Equal(t, wd, locator.BaseDir())
}

func TestLocator_Resolve(t *testing.T) {
	base := t.TempDir()
	locator, err := NewLocator(base)
	require.NoError(t, err)

	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"plain file", "README.md", filepath.Join(base, "README.md")},
		{"nested slash path", "res/icon.png", filepath.Join(base, "res", "icon.png")},
		{"parent segments collapse", "docs/../LICENSE.txt", filepath.Join(base, "LICENSE.txt")},
		{"leading parent escapes base", "../CHANGELOG.md", filepath.Join(filepath.Dir(base), "CHANGELOG.md")},
		{"empty name yields base", "", base},
		{"current dir segments", "./a/./b.md", filepath.Join(base, "a", "b.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := locator.Resolve(tt.fileName)
			assert.Equal(t, tt.want, got)
			assert.True(t, filepath.IsAbs(got))
		})
	}
}

func TestLocator_ResolveIsDeterministicAndIdempotent(t *testing.T) {
	locator, err := NewLocator(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"README.md", "a/../../b", "x//y", "res/ICON.PNG", "..", "a b/c.txt"} {
		first := locator.Resolve(name)
		second := locator.Resolve(name)
		assert.Equal(t, first, second, name)
		assert.True(t, filepath.IsAbs(first), name)
		assert.Equal(t, first, filepath.Clean(first), name)
	}
}

func TestLocator_ResolveIndependentOfWorkingDirectory(t *testing.T) {
	base := t.TempDir()
	locator, err := NewLocator(base)
	require.NoError(t, err)

	before := locator.Resolve("README.md")
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	after := locator.Resolve("README.md")

	assert.Equal(t, before, after)
}

func TestLocator_Locate(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "README.md"), []byte("# Hi"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "docs"), 0o755))

	locator, err := NewLocator(base)
	require.NoError(t, err)

	found := locator.Locate(domain.NewDocumentReference("README.md"))
	assert.True(t, found.Exists)
	assert.Equal(t, filepath.Join(base, "README.md"), found.Path)

	missing := locator.Locate(domain.NewDocumentReference("CHANGELOG.md"))
	assert.False(t, missing.Exists)
	assert.Equal(t, filepath.Join(base, "CHANGELOG.md"), missing.Path)

	dir := locator.Locate(domain.NewDocumentReference("docs"))
	assert.False(t, dir.Exists)
}
