package profile

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var embeddedProfiles embed.FS

// Default is the profile used when none is requested.
const Default = "minimal"

// ErrUnknownProfile is returned when a profile name cannot be resolved.
var ErrUnknownProfile = errors.New("unknown profile")

// Registry holds loaded profiles.
type Registry struct {
	profiles map[string]*Profile
}

// NewRegistry creates a registry with the embedded profiles loaded.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		profiles: make(map[string]*Profile),
	}

	entries, err := embeddedProfiles.ReadDir("profiles")
	if err != nil {
		return nil, fmt.Errorf("reading embedded profiles: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := embeddedProfiles.ReadFile("profiles/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded profile %s: %w", entry.Name(), err)
		}

		p, err := parseProfile(data)
		if err != nil {
			return nil, fmt.Errorf("embedded profile %s: %w", entry.Name(), err)
		}

		if p.Name == "" {
			p.Name = strings.TrimSuffix(entry.Name(), ".yaml")
		}
		r.Register(p)
	}

	return r, nil
}

// LoadFile loads a profile from a YAML file.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	p, err := parseProfile(data)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

func parseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Get returns a copy of the named profile. Names are case-insensitive.
func (r *Registry) Get(name string) (*Profile, bool) {
	p, ok := r.profiles[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// Register adds a profile to the registry under its lower-cased name.
func (r *Registry) Register(p *Profile) {
	r.profiles[strings.ToLower(p.Name)] = p
}

// List returns all registered profile names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFromDirectory registers every YAML profile found in dir. A missing
// directory is not an error.
func (r *Registry) LoadFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading profile directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}

		p, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}
		r.Register(p)
	}

	return nil
}

// Resolve picks the profile for a run: an explicit file wins, then a named
// profile, then Default.
func (r *Registry) Resolve(name, file string) (*Profile, error) {
	if file != "" {
		return LoadFile(file)
	}
	if name == "" {
		name = Default
	}
	p, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownProfile, name, strings.Join(r.List(), ", "))
	}
	return p, nil
}

// UserDir returns the directory holding user profiles, $HOME/.authorlist/profiles.
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".authorlist", "profiles"), nil
}
