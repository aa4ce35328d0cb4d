package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ignoredDirs are never uploaded as part of a folder, at any depth.
var ignoredDirs = []string{
	".git",
	".cache/huggingface",
}

// collectFolder walks root and returns one operation per regular file,
// placed under pathInRepo. Symlinks are followed for files only.
func collectFolder(root, pathInRepo string) ([]*commitOperation, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", root)
	}

	var ops []*commitOperation
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && isIgnoredDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		fi, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("stat %q: %w", p, err)
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		ops = append(ops, &commitOperation{
			pathInRepo: cleanRepoPath(path.Join(pathInRepo, rel)),
			localPath:  p,
			size:       fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", root, err)
	}

	return ops, nil
}

func isIgnoredDir(rel string) bool {
	for _, dir := range ignoredDirs {
		if rel == dir || strings.HasSuffix(rel, "/"+dir) {
			return true
		}
	}
	return false
}
