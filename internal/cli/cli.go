// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/treemd/internal/commands"
	"github.com/temirov/treemd/internal/config"
)

const (
	rootUse              = "treemd"
	rootShortDescription = "export the project tree with file contents to Markdown"
	rootLongDescription  = `treemd walks the directory that contains the treemd executable,
skips .git and every path matched by the .gitignore found there, and writes
each remaining file into tree_output.md next to the executable.
No arguments or flags are read.`
	confirmationFormat = "Tree output has been written to %s\n"

	// errorExecutablePathFormat reports failure to locate the running executable.
	errorExecutablePathFormat = "resolving executable path: %w"
)

// rootDirectoryResolver returns the directory to export.
type rootDirectoryResolver func() (string, error)

// Execute runs the treemd application.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(logger, resolveExecutableDirectory)
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command. Flag parsing is disabled and
// positional arguments are accepted and ignored.
func createRootCommand(logger *zap.Logger, resolveRootDirectory rootDirectoryResolver) *cobra.Command {
	return &cobra.Command{
		Use:                rootUse,
		Short:              rootShortDescription,
		Long:               rootLongDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(command *cobra.Command, arguments []string) error {
			rootDirectory, resolveError := resolveRootDirectory()
			if resolveError != nil {
				return resolveError
			}
			summary, exportError := commands.ExportTree(commands.ExportOptions{
				RootDirectoryPath: rootDirectory,
				Settings:          config.DefaultSettings(),
				Logger:            logger,
			})
			if exportError != nil {
				return exportError
			}
			fmt.Fprintf(command.OutOrStdout(), confirmationFormat, summary.OutputPath)
			return nil
		},
	}
}

// resolveExecutableDirectory returns the directory holding the running binary with symlinks resolved.
func resolveExecutableDirectory() (string, error) {
	executablePath, executableError := os.Executable()
	if executableError != nil {
		return "", fmt.Errorf(errorExecutablePathFormat, executableError)
	}
	resolvedPath, resolveError := filepath.EvalSymlinks(executablePath)
	if resolveError != nil {
		return "", fmt.Errorf(errorExecutablePathFormat, resolveError)
	}
	return filepath.Dir(resolvedPath), nil
}
