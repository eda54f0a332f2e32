package styled

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// SourceExtensions are the file extensions that get scanned
var SourceExtensions = []string{".js", ".ts", ".tsx"}

// ListOptions narrows the set of listed files.
// The zero value lists every file with a source extension.
type ListOptions struct {
	Exclude          []string // doublestar patterns, relative to root, slash separated
	RespectGitignore bool     // Skip paths matched by <root>/.gitignore
}

// isSourceFile reports whether path carries one of SourceExtensions
func isSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, allowed := range SourceExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ListFiles returns every source file under root, at any depth.
// A root that is a symbolic link is resolved; links inside the tree are never
// followed. A missing root, a root that is not a directory, or any directory
// that cannot be read fails the whole listing. Returned paths keep root as
// their prefix.
// The order of the returned paths is unspecified.
func ListFiles(root string, opts ListOptions) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &FilesystemError{Op: "stat", Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &FilesystemError{Op: "stat", Path: root, Err: ErrNotDirectory}
	}

	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, &FilesystemError{Op: "stat", Path: root, Err: err}
	}

	skip, err := newSkipper(walkRoot, opts)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &FilesystemError{Op: "readdir", Path: path, Err: err}
		}

		if path == walkRoot {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if skip(path, d.IsDir()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if isSourceFile(path) {
			rel, err := filepath.Rel(walkRoot, path)
			if err != nil {
				return &FilesystemError{Op: "walk", Path: path, Err: err}
			}
			files = append(files, filepath.Join(root, rel))
		}
		return nil
	})
	if err != nil {
		var fsErr *FilesystemError
		if errors.As(err, &fsErr) {
			return nil, fsErr
		}
		return nil, &FilesystemError{Op: "walk", Path: root, Err: err}
	}

	return files, nil
}

// newSkipper builds the exclusion check for ListFiles.
// Patterns are validated up front so a bad glob fails before walking.
func newSkipper(root string, opts ListOptions) (func(path string, isDir bool) bool, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	var gi *ignore.GitIgnore
	if opts.RespectGitignore {
		gitignorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitignorePath); err == nil {
			compiled, err := ignore.CompileIgnoreFile(gitignorePath)
			if err != nil {
				return nil, &FilesystemError{Op: "read", Path: gitignorePath, Err: err}
			}
			gi = compiled
		}
	}

	return func(path string, isDir bool) bool {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return false
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range opts.Exclude {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return true
			}
		}

		if gi != nil {
			if isDir && gi.MatchesPath(rel+"/") {
				return true
			}
			if gi.MatchesPath(rel) {
				return true
			}
		}

		return false
	}, nil
}
