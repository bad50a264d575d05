package table

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Registry holds registered formats.
type Registry struct {
	formats map[string]Format
}

// DefaultRegistry is the global format registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) {
	r.formats[f.Name()] = f
}

// Get retrieves a format by name.
func (r *Registry) Get(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// GetReader retrieves a reader by name.
func (r *Registry) GetReader(name string) (Reader, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	rd, ok := f.(Reader)
	if !ok {
		return nil, fmt.Errorf("format %s does not support reading", name)
	}
	return rd, nil
}

// List returns all registered format names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectFormat picks a reader from the file extension.
func (r *Registry) DetectFormat(filename string) (Reader, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, name := range r.List() {
		for _, fext := range r.formats[name].Extensions() {
			if ext == fext {
				return r.GetReader(name)
			}
		}
	}
	return nil, fmt.Errorf("could not detect format for %s", filename)
}

// Register adds a format to the default registry.
func Register(f Format) {
	DefaultRegistry.Register(f)
}

// Get retrieves a format from the default registry.
func Get(name string) (Format, bool) {
	return DefaultRegistry.Get(name)
}

// GetReader retrieves a reader from the default registry.
func GetReader(name string) (Reader, error) {
	return DefaultRegistry.GetReader(name)
}

// DetectFormat detects a reader using the default registry.
func DetectFormat(filename string) (Reader, error) {
	return DefaultRegistry.DetectFormat(filename)
}

// List returns the format names of the default registry.
func List() []string {
	return DefaultRegistry.List()
}
