package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles treemd into projectDirectory so the binary exports that directory.
func buildBinary(t *testing.T, projectDirectory string) string {
	t.Helper()
	binaryName := "treemd"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(projectDirectory, binaryName)

	currentDirectory, directoryError := os.Getwd()
	if directoryError != nil {
		t.Fatalf("Failed to get current working directory: %v", directoryError)
	}

	// #nosec G204
	buildCommand := exec.Command("go", "build", "-o", binaryPath, ".")
	buildCommand.Dir = currentDirectory
	outputData, buildErr := buildCommand.CombinedOutput()
	if buildErr != nil {
		t.Fatalf("Failed to build binary: %v\nBuild Output:\n%s", buildErr, string(outputData))
	}
	return binaryPath
}

func writeProjectFile(t *testing.T, projectDirectory string, relativePath string, content string) {
	t.Helper()
	fullPath := filepath.Join(projectDirectory, filepath.FromSlash(relativePath))
	if makeDirError := os.MkdirAll(filepath.Dir(fullPath), 0o755); makeDirError != nil {
		t.Fatalf("failed to create directory for %s: %v", relativePath, makeDirError)
	}
	if writeError := os.WriteFile(fullPath, []byte(content), 0o644); writeError != nil {
		t.Fatalf("failed to write %s: %v", relativePath, writeError)
	}
}

func TestBinaryExportsItsOwnDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	projectDirectory := t.TempDir()
	writeProjectFile(t, projectDirectory, ".gitignore", "node_modules/\n*.log\n")
	writeProjectFile(t, projectDirectory, "src/App.tsx", "export const App = () => null\n")
	writeProjectFile(t, projectDirectory, "src/debug.log", "noise\n")
	writeProjectFile(t, projectDirectory, "node_modules/react/index.js", "module.exports = {}\n")
	writeProjectFile(t, projectDirectory, ".git/HEAD", "ref: refs/heads/main\n")
	binaryPath := buildBinary(t, projectDirectory)

	command := exec.Command(binaryPath, "ignored-argument", "--ignored-flag")
	command.Dir = t.TempDir()
	var standardOutputBuffer, standardErrorBuffer bytes.Buffer
	command.Stdout = &standardOutputBuffer
	command.Stderr = &standardErrorBuffer
	if runError := command.Run(); runError != nil {
		t.Fatalf("treemd failed: %v\nstderr:\n%s", runError, standardErrorBuffer.String())
	}

	resolvedProjectDirectory, resolveError := filepath.EvalSymlinks(projectDirectory)
	if resolveError != nil {
		t.Fatalf("failed to resolve %s: %v", projectDirectory, resolveError)
	}
	outputPath := filepath.Join(resolvedProjectDirectory, "tree_output.md")
	expectedLine := "Tree output has been written to " + outputPath + "\n"
	if standardOutputBuffer.String() != expectedLine {
		t.Fatalf("unexpected stdout %q, want %q", standardOutputBuffer.String(), expectedLine)
	}

	documentBytes, readError := os.ReadFile(outputPath)
	if readError != nil {
		t.Fatalf("failed to read output: %v", readError)
	}
	document := string(documentBytes)

	expectedFragments := []string{
		"# Project Tree with File Contents\n\n",
		"## .gitignore\n```\nnode_modules/\n*.log\n```\n\n",
		"## " + filepath.Base(binaryPath) + "\n*Binary or unreadable file*\n\n",
		"## src/App.tsx\n```\nexport const App = () => null\n```\n\n",
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(document, fragment) {
			t.Fatalf("expected fragment %q in document:\n%s", fragment, document)
		}
	}
	for _, unexpected := range []string{"debug.log", "node_modules/react", ".git/HEAD", "## tree_output.md"} {
		if strings.Contains(document, unexpected) {
			t.Fatalf("unexpected %q in document:\n%s", unexpected, document)
		}
	}
}
