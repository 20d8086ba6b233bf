package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/treemd/internal/config"
	"github.com/temirov/treemd/internal/output"
	"github.com/temirov/treemd/internal/types"
	"github.com/temirov/treemd/internal/utils"
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorRootStatFormat is used when the root directory cannot be inspected.
	errorRootStatFormat = "inspecting root directory %s: %w"
	// errorRootNotDirectoryFormat is used when the root exists but is not a directory.
	errorRootNotDirectoryFormat = "root path %s is not a directory"
	// errorCreateOutputFormat is used when the output document cannot be opened for writing.
	errorCreateOutputFormat = "creating output file %s: %w"
	// errorWriteOutputFormat is used when writing the output document fails.
	errorWriteOutputFormat = "writing output file %s: %w"
	// errorCloseOutputFormat is used when closing the output document fails.
	errorCloseOutputFormat = "closing output file %s: %w"
	// errorWalkFormat is used when the traversal stops early.
	errorWalkFormat = "walking %s: %w"

	logMessageUnreadableFile = "writing placeholder for unreadable file"
	logMessageExportComplete = "export complete"
)

// ExportOptions selects the tree to export and the document to write.
type ExportOptions struct {
	// RootDirectoryPath is the directory walked; every heading is relative to it.
	RootDirectoryPath string
	// OutputFilePath defaults to Settings.OutputFileName inside the root.
	OutputFilePath string
	Settings       config.Settings
	Logger         *zap.Logger
}

// ExportTree writes every retained file under the root into one Markdown document.
// The output file is created or truncated before the walk and is closed on every
// return path. Files that cannot be read as text produce a placeholder section and
// do not stop the export. The output document never lists itself.
func ExportTree(options ExportOptions) (summary types.ExportSummary, exportError error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := options.Settings.WithDefaults()

	rootDirectoryPath, absoluteRootError := filepath.Abs(options.RootDirectoryPath)
	if absoluteRootError != nil {
		return summary, fmt.Errorf(errorAbsolutePathFormat, options.RootDirectoryPath, absoluteRootError)
	}
	rootInfo, rootStatError := os.Stat(rootDirectoryPath)
	if rootStatError != nil {
		return summary, fmt.Errorf(errorRootStatFormat, rootDirectoryPath, rootStatError)
	}
	if !rootInfo.IsDir() {
		return summary, fmt.Errorf(errorRootNotDirectoryFormat, rootDirectoryPath)
	}

	outputFilePath := options.OutputFilePath
	if outputFilePath == "" {
		outputFilePath = filepath.Join(rootDirectoryPath, settings.OutputFileName)
	}
	outputFilePath, absoluteOutputError := filepath.Abs(outputFilePath)
	if absoluteOutputError != nil {
		return summary, fmt.Errorf(errorAbsolutePathFormat, options.OutputFilePath, absoluteOutputError)
	}
	summary.OutputPath = outputFilePath

	ignorePatterns, loadError := config.LoadIgnorePatterns(rootDirectoryPath, settings.IgnoreFileName)
	if loadError != nil {
		return summary, loadError
	}

	outputRelativePath := ""
	if !utils.ShouldIgnorePath(outputFilePath, rootDirectoryPath, ignorePatterns) {
		outputRelativePath = utils.RelativePathOrSelf(outputFilePath, rootDirectoryPath)
	}

	// #nosec G304
	outputHandle, createError := os.Create(outputFilePath)
	if createError != nil {
		return summary, fmt.Errorf(errorCreateOutputFormat, outputFilePath, createError)
	}
	defer func() {
		if closeError := outputHandle.Close(); closeError != nil && exportError == nil {
			exportError = fmt.Errorf(errorCloseOutputFormat, outputFilePath, closeError)
		}
	}()

	markdownWriter := output.NewMarkdownWriter(outputHandle, settings.DocumentTitle, settings.UnreadablePlaceholder)
	if writeError := markdownWriter.WriteTitle(); writeError != nil {
		return summary, fmt.Errorf(errorWriteOutputFormat, outputFilePath, writeError)
	}

	rootFileSystem := os.DirFS(rootDirectoryPath)
	statistics, walkError := WalkTree(rootFileSystem, ignorePatterns, logger, func(relativePath string) error {
		if relativePath == outputRelativePath {
			return nil
		}
		fileEntry, readError := readFileEntry(rootFileSystem, relativePath)
		if readError != nil {
			logger.Warn(logMessageUnreadableFile, zap.String(logFieldPath, relativePath), zap.Error(readError))
			summary.UnreadableFiles++
		}
		summary.TotalFiles++
		if writeError := markdownWriter.WriteFile(fileEntry); writeError != nil {
			return fmt.Errorf(errorWriteOutputFormat, outputFilePath, writeError)
		}
		return nil
	})
	summary.PrunedDirectories = statistics.PrunedDirectories
	summary.SkippedDirectories = statistics.SkippedDirectories
	if walkError != nil {
		return summary, fmt.Errorf(errorWalkFormat, rootDirectoryPath, walkError)
	}

	if flushError := markdownWriter.Flush(); flushError != nil {
		return summary, fmt.Errorf(errorWriteOutputFormat, outputFilePath, flushError)
	}

	logger.Debug(logMessageExportComplete,
		zap.String(logFieldPath, outputFilePath),
		zap.Int("files", summary.TotalFiles),
		zap.Int("unreadable", summary.UnreadableFiles),
		zap.Int("pruned_directories", summary.PrunedDirectories),
	)
	return summary, nil
}
