package safety

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath    = errors.New("invalid path")
	ErrOutsideAllowed = errors.New("outside scan root")
	ErrTraversal      = errors.New("path traversal detected")
	ErrNotDirectChild = errors.New("not an immediate entry of scan root")
)

// Validator enforces that deletes stay on immediate entries of the scan root
type Validator struct {
	Root string
}

// NewValidator creates a validator for the given scan root
func NewValidator(root string) (*Validator, error) {
	r, err := NormalizePath(root)
	if err != nil {
		return nil, err
	}
	return &Validator{Root: r}, nil
}

// ValidateDeleteTarget is the single-source-of-truth for delete authorization
// Returns typed error on safety violation
func (v *Validator) ValidateDeleteTarget(path string) error {
	// Detect traversal in raw input before cleaning hides it
	if DetectTraversal(path) {
		return ErrTraversal
	}

	p, err := NormalizePath(path)
	if err != nil {
		return err
	}

	if p == v.Root || !hasPathPrefix(p, v.Root) {
		return ErrOutsideAllowed
	}

	// No recursion: only entries whose parent is the root itself
	if filepath.Dir(p) != v.Root {
		return ErrNotDirectChild
	}

	return nil
}

// NormalizePath converts path to absolute, cleaned form
func NormalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrInvalidPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrInvalidPath
	}
	return filepath.Clean(abs), nil
}

// DetectTraversal blocks any ".." segment in raw input
func DetectTraversal(raw string) bool {
	parts := strings.Split(filepath.ToSlash(raw), "/")
	for _, p := range parts {
		if p == ".." {
			return true
		}
	}
	return false
}

// hasPathPrefix checks if path has the given prefix
func hasPathPrefix(path, prefix string) bool {
	path = filepath.Clean(path)
	prefix = filepath.Clean(prefix)

	if prefix == string(os.PathSeparator) {
		return strings.HasPrefix(path, prefix)
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+string(os.PathSeparator))
}
