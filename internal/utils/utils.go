// Package utils contains the path filtering and content helpers used by treemd.
package utils

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/temirov/treemd/internal/types"
)

const (
	// GitDirectoryName is the name of the Git repository directory. It is excluded unconditionally.
	GitDirectoryName = ".git"
	// CurrentDirectoryPath is the relative path of the walk root itself.
	CurrentDirectoryPath = "."
)

const pathSegmentSeparator = "/"

// RelativePathOrSelf calculates the slash-separated relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return CurrentDirectoryPath
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// ShouldIgnorePath reports whether fullPath, located under rootDirectoryPath,
// is excluded by the Git directory rule or by any of the ignore patterns.
func ShouldIgnorePath(fullPath, rootDirectoryPath string, ignorePatterns types.IgnorePatternSet) bool {
	absolutePath, absoluteError := filepath.Abs(fullPath)
	if absoluteError != nil {
		absolutePath = fullPath
	}
	return ShouldIgnoreRelativePath(RelativePathOrSelf(absolutePath, rootDirectoryPath), ignorePatterns)
}

// ShouldIgnoreRelativePath reports whether a path relative to the walk root is excluded.
// Any path with a .git segment is ignored. Otherwise a pattern excludes the path when it
// matches the whole relative path or its base name; patterns flagged AnyDepth also match
// every trailing run of segments, so "docs/notes.txt" excludes "a/b/docs/notes.txt".
// Files and directories go through the same check.
func ShouldIgnoreRelativePath(relativePath string, ignorePatterns types.IgnorePatternSet) bool {
	normalizedPath := strings.ReplaceAll(relativePath, "\\", pathSegmentSeparator)
	pathSegments := strings.Split(normalizedPath, pathSegmentSeparator)

	if lo.Contains(pathSegments, GitDirectoryName) {
		return true
	}

	baseName := pathSegments[len(pathSegments)-1]
	return lo.ContainsBy(ignorePatterns, func(pattern types.IgnorePattern) bool {
		if globMatches(pattern.Glob, normalizedPath) || globMatches(pattern.Glob, baseName) {
			return true
		}
		if !pattern.AnyDepth {
			return false
		}
		for segmentIndex := 1; segmentIndex < len(pathSegments)-1; segmentIndex++ {
			trailingPath := strings.Join(pathSegments[segmentIndex:], pathSegmentSeparator)
			if globMatches(pattern.Glob, trailingPath) {
				return true
			}
		}
		return false
	})
}

// globMatches applies shell glob semantics to candidate: '*' and '?' stop at '/', so
// "src/*.gen.go" matches "src/a.gen.go" but not "src/a/b.gen.go". A malformed pattern
// never matches.
func globMatches(pattern, candidate string) bool {
	if caseInsensitiveGlob {
		pattern = strings.ToLower(pattern)
		candidate = strings.ToLower(candidate)
	}
	isMatched, matchError := path.Match(pattern, candidate)
	return matchError == nil && isMatched
}
