// Package config loads the root ignore file and the fixed treemd settings.
package config

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/temirov/treemd/internal/types"
)

const (
	commentPrefix       = "#"
	pathSeparator       = "/"
	anyDepthPrefix      = "**/"
	wildcardCharacters  = "*?["
	extensionIndicator  = "."
	loadIgnoreFileError = "loading %s: %w"

	initialLineBufferSize = 64 * 1024
)

// LoadIgnorePatterns reads ignoreFileName from the root directory and returns its patterns.
// A missing ignore file yields an empty set.
func LoadIgnorePatterns(rootDirectoryPath string, ignoreFileName string) (types.IgnorePatternSet, error) {
	ignoreFilePath := filepath.Join(rootDirectoryPath, ignoreFileName)
	patternSet, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		return nil, fmt.Errorf(loadIgnoreFileError, ignoreFilePath, loadError)
	}
	return patternSet, nil
}

// LoadIgnoreFilePatterns reads a single ignore file into a deduplicated pattern set.
// Blank lines and lines starting with '#' are skipped. Negation lines are kept as literals.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) (types.IgnorePatternSet, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return types.IgnorePatternSet{}, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var patternSet types.IgnorePatternSet
	scanner := bufio.NewScanner(fileHandle)
	scanner.Buffer(make([]byte, 0, initialLineBufferSize), math.MaxInt)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		pattern := NormalizeIgnorePattern(trimmedLine)
		if pattern.Glob == "" {
			continue
		}
		patternSet = append(patternSet, pattern)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return lo.Uniq(patternSet), nil
}

// NormalizeIgnorePattern converts one ignore file line into a glob.
// One trailing and one leading separator are removed. A wildcard-free pattern that
// contains a dot looks like a file name and is matched at any depth. A leading "**/"
// is dropped and the remainder is matched at any depth.
func NormalizeIgnorePattern(line string) types.IgnorePattern {
	glob := strings.TrimSuffix(line, pathSeparator)
	glob = strings.TrimPrefix(glob, pathSeparator)
	if !strings.ContainsAny(glob, wildcardCharacters) && strings.Contains(glob, extensionIndicator) {
		return types.IgnorePattern{Glob: glob, AnyDepth: true}
	}
	if strings.HasPrefix(glob, anyDepthPrefix) {
		return types.IgnorePattern{Glob: strings.TrimPrefix(glob, anyDepthPrefix), AnyDepth: true}
	}
	return types.IgnorePattern{Glob: glob}
}
