// Package source resolves command-line file arguments (paths,
// directories, glob patterns) into the list of content files to
// analyze.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// contentExtensions are the file types walked up from directories.
var contentExtensions = map[string]struct{}{
	".md":       {},
	".markdown": {},
	".html":     {},
	".htm":      {},
	".txt":      {},
}

// IsMarkdown returns true if the file extension marks a Markdown file.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// isContent returns true for file types analyzed when walking
// directories.
func isContent(path string) bool {
	_, ok := contentExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// hasGlobChars returns true if the string contains glob
// meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Resolve expands args into a sorted, deduplicated list of file paths.
// Plain file paths pass through untouched; directories are walked
// recursively for content files; glob patterns are matched against the
// tree below the current directory.
func Resolve(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, clean)
	}

	for _, arg := range args {
		switch {
		case hasGlobChars(arg):
			matches, err := expandGlob(arg)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
		default:
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("resolving %q: %w", arg, err)
			}
			if info.IsDir() {
				walked, err := walkDir(arg)
				if err != nil {
					return nil, err
				}
				for _, w := range walked {
					add(w)
				}
				continue
			}
			add(arg)
		}
	}

	sort.Strings(files)
	return files, nil
}

// expandGlob matches pattern against content files under the current
// directory.
func expandGlob(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}

	var matches []string
	err = filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel := filepath.ToSlash(path)
		if g.Match(rel) || g.Match(filepath.Base(path)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("expanding glob %q: %w", pattern, err)
	}
	return matches, nil
}

// walkDir collects content files under dir recursively.
func walkDir(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if isContent(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", dir, err)
	}
	return files, nil
}
