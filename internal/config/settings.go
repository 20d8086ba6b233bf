package config

const (
	// DefaultIgnoreFileName is the ignore file read from the walk root.
	DefaultIgnoreFileName = ".gitignore"
	// DefaultOutputFileName is the document written into the walk root.
	DefaultOutputFileName = "tree_output.md"
	// DefaultDocumentTitle is the heading written at the top of the document.
	DefaultDocumentTitle = "Project Tree with File Contents"
	// DefaultUnreadablePlaceholder replaces the fenced block of binary or unreadable files.
	DefaultUnreadablePlaceholder = "*Binary or unreadable file*"
)

// Settings holds the fixed names and labels used by an export.
type Settings struct {
	IgnoreFileName        string
	OutputFileName        string
	DocumentTitle         string
	UnreadablePlaceholder string
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{}.WithDefaults()
}

// WithDefaults fills every empty field with its built-in default.
func (settings Settings) WithDefaults() Settings {
	result := settings
	if result.IgnoreFileName == "" {
		result.IgnoreFileName = DefaultIgnoreFileName
	}
	if result.OutputFileName == "" {
		result.OutputFileName = DefaultOutputFileName
	}
	if result.DocumentTitle == "" {
		result.DocumentTitle = DefaultDocumentTitle
	}
	if result.UnreadablePlaceholder == "" {
		result.UnreadablePlaceholder = DefaultUnreadablePlaceholder
	}
	return result
}
