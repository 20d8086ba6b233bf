package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/temirov/treemd/internal/types"
	"github.com/temirov/treemd/internal/utils"
)

var (
	// errNotRegularFile marks devices, sockets, and pipes, which are never opened.
	errNotRegularFile = errors.New("not a regular file")
	// errBinaryContent marks content that is not UTF-8 text.
	errBinaryContent = errors.New("binary content")
)

// readFileEntry loads relativePath as text. When the file cannot be read or is not
// text, the returned entry is a placeholder and the error explains why.
// The file handle is closed on every path.
func readFileEntry(fileSystem fs.FS, relativePath string) (types.FileEntry, error) {
	placeholderEntry := types.FileEntry{RelativePath: relativePath}

	fileInfo, statError := fs.Stat(fileSystem, relativePath)
	if statError != nil {
		return placeholderEntry, statError
	}
	if !fileInfo.Mode().IsRegular() {
		return placeholderEntry, fmt.Errorf("%w: %s", errNotRegularFile, fileInfo.Mode().Type())
	}

	fileHandle, openError := fileSystem.Open(relativePath)
	if openError != nil {
		return placeholderEntry, openError
	}
	defer fileHandle.Close()

	fileBytes, readError := io.ReadAll(fileHandle)
	if readError != nil {
		return placeholderEntry, readError
	}
	if utils.IsBinary(fileBytes) {
		return placeholderEntry, errBinaryContent
	}

	return types.FileEntry{
		RelativePath: relativePath,
		Content:      string(fileBytes),
		IsText:       true,
	}, nil
}
