// Package commands contains the tree walk and the export that renders it.
package commands

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/temirov/treemd/internal/types"
	"github.com/temirov/treemd/internal/utils"
)

const (
	// errorReadRootFormat is used when the walk root cannot be listed.
	errorReadRootFormat = "reading root directory: %w"

	logMessageSkipDirectory  = "skipping unreadable directory"
	logMessagePruneDirectory = "pruned ignored directory"
	logFieldPath             = "path"
)

// FileVisitor receives the slash-separated relative path of every retained file.
type FileVisitor func(relativePath string) error

// WalkStatistics counts the directories left out of a walk.
type WalkStatistics struct {
	PrunedDirectories  int
	SkippedDirectories int
}

// WalkTree traverses fileSystem top-down starting at its root. In each directory the
// ignored subdirectories are dropped before they are queued, so a pruned subtree is
// never listed. The remaining files are passed to visitor in name order before any
// subdirectory is entered, and subdirectories are entered in name order.
// Symbolic links to directories are not followed. A subdirectory that cannot be
// listed is logged and skipped; a visitor error stops the walk.
func WalkTree(fileSystem fs.FS, ignorePatterns types.IgnorePatternSet, logger *zap.Logger, visitor FileVisitor) (WalkStatistics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var statistics WalkStatistics
	pendingDirectories := []string{utils.CurrentDirectoryPath}

	for len(pendingDirectories) > 0 {
		directoryPath := pendingDirectories[len(pendingDirectories)-1]
		pendingDirectories = pendingDirectories[:len(pendingDirectories)-1]

		directoryEntries, readError := fs.ReadDir(fileSystem, directoryPath)
		if readError != nil {
			if directoryPath == utils.CurrentDirectoryPath {
				return statistics, fmt.Errorf(errorReadRootFormat, readError)
			}
			logger.Warn(logMessageSkipDirectory, zap.String(logFieldPath, directoryPath), zap.Error(readError))
			statistics.SkippedDirectories++
			continue
		}

		var subdirectoryPaths []string
		var filePaths []string
		for _, directoryEntry := range directoryEntries {
			entryPath := path.Join(directoryPath, directoryEntry.Name())
			switch classifyEntry(fileSystem, entryPath, directoryEntry) {
			case entryKindDirectory:
				subdirectoryPaths = append(subdirectoryPaths, entryPath)
			case entryKindFile:
				filePaths = append(filePaths, entryPath)
			}
		}

		retainedSubdirectories := lo.Filter(subdirectoryPaths, func(subdirectoryPath string, _ int) bool {
			if !utils.ShouldIgnoreRelativePath(subdirectoryPath, ignorePatterns) {
				return true
			}
			logger.Debug(logMessagePruneDirectory, zap.String(logFieldPath, subdirectoryPath))
			statistics.PrunedDirectories++
			return false
		})

		for _, filePath := range filePaths {
			if utils.ShouldIgnoreRelativePath(filePath, ignorePatterns) {
				continue
			}
			if visitError := visitor(filePath); visitError != nil {
				return statistics, visitError
			}
		}

		for subdirectoryIndex := len(retainedSubdirectories) - 1; subdirectoryIndex >= 0; subdirectoryIndex-- {
			pendingDirectories = append(pendingDirectories, retainedSubdirectories[subdirectoryIndex])
		}
	}

	return statistics, nil
}

type entryKind int

const (
	entryKindFile entryKind = iota
	entryKindDirectory
	entryKindLinkedDirectory
)

// classifyEntry resolves symbolic links so a link to a file is exported like a file.
// Dangling links are reported as files and end up as unreadable sections.
func classifyEntry(fileSystem fs.FS, entryPath string, directoryEntry fs.DirEntry) entryKind {
	if directoryEntry.IsDir() {
		return entryKindDirectory
	}
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return entryKindFile
	}
	targetInfo, statError := fs.Stat(fileSystem, entryPath)
	if statError == nil && targetInfo.IsDir() {
		return entryKindLinkedDirectory
	}
	return entryKindFile
}
