package authorlist

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Serialize writes the document with an XML declaration and two-space
// indentation.
func Serialize(w io.Writer, doc *Document) error {
	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling author list: %w", err)
	}

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	if _, err := w.Write(output); err != nil {
		return err
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}

	return nil
}

// Marshal returns the serialized document.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Serialize(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the document and writes it to path. Nothing is
// written when serialization fails.
func WriteFile(path string, doc *Document) ([]byte, error) {
	data, err := Marshal(doc)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return data, nil
}
