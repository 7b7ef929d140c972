package ports

// FileSystem abstracts the file operations the exporters and config loader
// need, so tests can substitute an in-memory or failing implementation.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories as
	// needed.
	WriteFile(path string, data []byte) error

	// Exists reports whether a file or directory exists.
	Exists(path string) (bool, error)
}
