package content

import (
	"fmt"
	"os"
)

// LoadFile reads a YAML or JSON catalog from path into a MemoryStore.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(catalog)
}

// LoadDefault returns a MemoryStore over the compiled-in catalog.
func LoadDefault() (*MemoryStore, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(catalog)
}
