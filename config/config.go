// Package config reads the TOML run configuration that carries the
// publication reference.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lehigh-university-libraries/authorlist/roster"
)

// File is the recognized content of a configuration file.
type File struct {
	// PubRef is the publication reference, e.g. an arXiv or report number.
	PubRef *string `toml:"pub_ref"`
}

// Load reads and decodes a configuration file. Unknown keys are ignored.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// PublicationReference returns the pub_ref value of the configuration file at
// path, reporting problems on standard error.
func PublicationReference(path string) roster.Field {
	return PublicationReferenceTo(os.Stderr, path)
}

// PublicationReferenceTo is PublicationReference with the diagnostic written
// to w. Failures never stop a run: a missing or unreadable file prints a
// diagnostic and yields an absent reference.
func PublicationReferenceTo(w io.Writer, path string) roster.Field {
	if path == "" {
		slog.Debug("no configuration file given, publication reference left empty")
		return roster.Field{}
	}

	f, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(w, "Error: config file '%s' not found.\n", path)
		} else {
			fmt.Fprintf(w, "Error: config file '%s' could not be read: %v\n", path, err)
		}
		slog.Warn("publication reference unavailable", "path", path, "err", err)
		return roster.Field{}
	}

	if f.PubRef == nil {
		slog.Debug("configuration has no pub_ref key", "path", path)
		return roster.Field{}
	}
	return roster.Text(*f.PubRef)
}
