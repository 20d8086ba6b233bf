package output_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/temirov/treemd/internal/output"
	"github.com/temirov/treemd/internal/types"
)

const (
	testTitle       = "Project Tree with File Contents"
	testPlaceholder = "*Binary or unreadable file*"
)

// failingWriter rejects every write.
type failingWriter struct{}

var errWriteRejected = errors.New("write rejected")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteRejected }

func TestMarkdownWriterRendersSections(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		entries  []types.FileEntry
		expected string
	}{
		{
			name:     "title only",
			entries:  nil,
			expected: "# " + testTitle + "\n\n",
		},
		{
			name:    "content with trailing newline",
			entries: []types.FileEntry{{RelativePath: "main.go", Content: "package main\n", IsText: true}},
			expected: "# " + testTitle + "\n\n" +
				"## main.go\n```\npackage main\n```\n\n",
		},
		{
			name:    "content without trailing newline",
			entries: []types.FileEntry{{RelativePath: "notes/todo.txt", Content: "ship it", IsText: true}},
			expected: "# " + testTitle + "\n\n" +
				"## notes/todo.txt\n```\nship it\n```\n\n",
		},
		{
			name:    "empty file",
			entries: []types.FileEntry{{RelativePath: "empty.txt", Content: "", IsText: true}},
			expected: "# " + testTitle + "\n\n" +
				"## empty.txt\n```\n\n```\n\n",
		},
		{
			name: "binary placeholder between text files",
			entries: []types.FileEntry{
				{RelativePath: "a.txt", Content: "a\n", IsText: true},
				{RelativePath: "logo.png", IsText: false},
				{RelativePath: "b.txt", Content: "b\n", IsText: true},
			},
			expected: "# " + testTitle + "\n\n" +
				"## a.txt\n```\na\n```\n\n" +
				"## logo.png\n" + testPlaceholder + "\n\n" +
				"## b.txt\n```\nb\n```\n\n",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buffer bytes.Buffer
			writer := output.NewMarkdownWriter(&buffer, testTitle, testPlaceholder)
			if err := writer.WriteTitle(); err != nil {
				t.Fatalf("write title failed: %v", err)
			}
			for index, entry := range testCase.entries {
				if err := writer.WriteFile(entry); err != nil {
					t.Fatalf("write entry %d failed: %v", index, err)
				}
			}
			if err := writer.Flush(); err != nil {
				t.Fatalf("flush failed: %v", err)
			}
			if buffer.String() != testCase.expected {
				t.Fatalf("unexpected document:\n%q\nwant:\n%q", buffer.String(), testCase.expected)
			}
		})
	}
}

func TestMarkdownWriterReportsWriteFailure(t *testing.T) {
	t.Parallel()

	writer := output.NewMarkdownWriter(failingWriter{}, testTitle, testPlaceholder)
	if err := writer.WriteTitle(); err != nil {
		t.Fatalf("buffered title write should not fail: %v", err)
	}
	if err := writer.Flush(); !errors.Is(err, errWriteRejected) {
		t.Fatalf("expected flush to report the rejected write, got %v", err)
	}
	if err := writer.WriteFile(types.FileEntry{RelativePath: "x.txt", IsText: true}); !errors.Is(err, errWriteRejected) {
		t.Fatalf("expected later writes to keep the first error, got %v", err)
	}
}
