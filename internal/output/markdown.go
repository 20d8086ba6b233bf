// Package output renders exported files as a Markdown document.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/temirov/treemd/internal/types"
)

const (
	titlePrefix   = "# "
	headingPrefix = "## "
	codeFence     = "```"
	newline       = "\n"
)

// MarkdownWriter writes the title and one section per file. The first write
// error is kept and returned by every later call.
type MarkdownWriter struct {
	writer                *bufio.Writer
	documentTitle         string
	unreadablePlaceholder string
	writeError            error
}

// NewMarkdownWriter wraps destination in a buffered Markdown writer.
func NewMarkdownWriter(destination io.Writer, documentTitle string, unreadablePlaceholder string) *MarkdownWriter {
	return &MarkdownWriter{
		writer:                bufio.NewWriter(destination),
		documentTitle:         documentTitle,
		unreadablePlaceholder: unreadablePlaceholder,
	}
}

// WriteTitle writes the document heading followed by a blank line.
func (markdownWriter *MarkdownWriter) WriteTitle() error {
	return markdownWriter.write(titlePrefix, markdownWriter.documentTitle, newline, newline)
}

// WriteFile writes the heading for entry and either its fenced content or the placeholder line.
func (markdownWriter *MarkdownWriter) WriteFile(entry types.FileEntry) error {
	if writeError := markdownWriter.write(headingPrefix, entry.RelativePath, newline); writeError != nil {
		return writeError
	}
	if !entry.IsText {
		return markdownWriter.write(markdownWriter.unreadablePlaceholder, newline, newline)
	}
	if writeError := markdownWriter.write(codeFence, newline, entry.Content); writeError != nil {
		return writeError
	}
	if !strings.HasSuffix(entry.Content, newline) {
		if writeError := markdownWriter.write(newline); writeError != nil {
			return writeError
		}
	}
	return markdownWriter.write(codeFence, newline, newline)
}

// Flush writes any buffered data to the destination.
func (markdownWriter *MarkdownWriter) Flush() error {
	if markdownWriter.writeError != nil {
		return markdownWriter.writeError
	}
	markdownWriter.writeError = markdownWriter.writer.Flush()
	return markdownWriter.writeError
}

func (markdownWriter *MarkdownWriter) write(fragments ...string) error {
	if markdownWriter.writeError != nil {
		return markdownWriter.writeError
	}
	for _, fragment := range fragments {
		if _, writeError := markdownWriter.writer.WriteString(fragment); writeError != nil {
			markdownWriter.writeError = writeError
			return writeError
		}
	}
	return nil
}
