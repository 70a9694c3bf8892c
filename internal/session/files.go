package session

import "os"

// OSFiles implements Files on the local file system.
type OSFiles struct{}

// ReadFile reads the named file.
func (OSFiles) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile creates or truncates the named file.
func (OSFiles) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// Exists reports whether path names a regular file.
func (OSFiles) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
