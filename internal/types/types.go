// Package types defines the data structures shared by the treemd packages.
package types

// IgnorePattern is a single glob loaded from the ignore file.
// AnyDepth patterns match any trailing run of path segments in addition to
// the full relative path and the base name.
type IgnorePattern struct {
	Glob     string
	AnyDepth bool
}

// IgnorePatternSet is the deduplicated list of patterns applied to every walked entry.
type IgnorePatternSet []IgnorePattern

// FileEntry is one retained file handed to the document writer.
type FileEntry struct {
	RelativePath string
	Content      string
	IsText       bool
}

// ExportSummary describes the document produced by a single export.
type ExportSummary struct {
	OutputPath         string
	TotalFiles         int
	UnreadableFiles    int
	PrunedDirectories  int
	SkippedDirectories int
}
