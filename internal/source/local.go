package source

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadLocal reads a README from disk. The returned Base is zero; callers
// that know which repository the file belongs to set it themselves.
func ReadLocal(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadLocal, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadLocal, path)
	}
	if info.Size() > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrTooLarge, path, info.Size())
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadLocal, err)
	}
	return &Document{Markdown: string(content), Name: filepath.Base(path)}, nil
}
