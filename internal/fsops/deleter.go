package fsops

// Deleter abstracts filesystem delete operations
// Enables failure injection in tests without touching a real directory
type Deleter interface {
	Remove(path string) error
}
