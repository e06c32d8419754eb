// Package adapter contains the infrastructure adapters of the pyobf CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

const recursiveSuffix = "/..."

// skippedDirs are never descended into when collecting sources.
var skippedDirs = map[string]bool{
	".git":         true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	"node_modules": true,
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading programs and writing artifacts. It hides direct `os`
// access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get collects python sources from paths. A path ending in "/..." is
	// scanned recursively, a directory only at its top level, a file as is.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory.
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns a SHA-256 fingerprint of the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFileAtomic writes content next to path and renames it into place,
	// so readers never observe a partial file.
	WriteFileAtomic(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and its parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get resolves path patterns into sources sorted by path.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error) {
	filters, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"." + recursiveSuffix}
	}

	seen := make(map[string]bool)

	var sources []m.Source

	for _, pattern := range paths {
		root, recursive := splitPattern(pattern)

		info, err := a.FileInfo(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			source, ok, err := a.source(ctx, string(root), filters, seen)
			if err != nil {
				return nil, err
			}

			if ok {
				sources = append(sources, source)
			}

			continue
		}

		err = a.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != string(root) && skippedDirs[info.Name()] {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) != ".py" {
				return nil
			}

			source, ok, err := a.source(ctx, path, filters, seen)
			if err != nil {
				return err
			}

			if ok {
				sources = append(sources, source)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Origin.ShortPath < sources[j].Origin.ShortPath
	})

	return sources, nil
}

func (a *LocalSourceFSAdapter) source(ctx context.Context, path string, filters []*regexp.Regexp, seen map[string]bool) (m.Source, bool, error) {
	for _, filter := range filters {
		if filter.MatchString(path) {
			return m.Source{}, false, nil
		}
	}

	full, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	if seen[full] {
		return m.Source{}, false, nil
	}

	seen[full] = true

	hash, err := a.HashFile(ctx, m.Path(path))
	if err != nil {
		return m.Source{}, false, fmt.Errorf("hash error for %s: %w", path, err)
	}

	return m.Source{
		Origin: &m.File{
			FullPath:  m.Path(full),
			ShortPath: m.Path(filepath.Clean(path)),
			Hash:      hash,
		},
	}, true, nil
}

func splitPattern(pattern m.Path) (m.Path, bool) {
	p := string(pattern)
	if p == "..." {
		return ".", true
	}

	if strings.HasSuffix(p, recursiveSuffix) {
		root := strings.TrimSuffix(p, recursiveSuffix)
		if root == "" {
			root = "/"
		}

		return m.Path(root), true
	}

	return pattern, false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	filters := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filters = append(filters, re)
	}

	return filters, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// WriteFileAtomic writes to a temp file in the target directory and renames it.
func (a *LocalSourceFSAdapter) WriteFileAtomic(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(path)

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, target)
}

// MkdirAll creates path with 0o750 permissions.
func (a *LocalSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), 0o750)
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
