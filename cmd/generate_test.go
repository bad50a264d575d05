package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/authorlist/authorlist"
	"github.com/lehigh-university-libraries/authorlist/profile"
	"github.com/lehigh-university-libraries/authorlist/table"

	_ "github.com/lehigh-university-libraries/authorlist/table/csv"
)

const sheet = `given,abbrev,family,unused,orcid,aff1,aff2,aff3,order
Alan,A.,Turing,,,Unique Institute,Shared Lab,,2
Ada,A.,Lovelace,,0000-0001,Shared Lab,,,1
`

const laxSchema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="collaborationauthorlist">
    <xs:complexType>
      <xs:sequence>
        <xs:any namespace="##any" processContents="skip" minOccurs="0" maxOccurs="unbounded"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>
`

const strictSchema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="roster">
    <xs:complexType/>
  </xs:element>
</xs:schema>
`

func fixedNow() time.Time {
	return time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
}

func setup(t *testing.T) (dir string, opts generateOptions) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir = t.TempDir()
	writeTestFile(t, dir, "authors.csv", sheet)
	return dir, generateOptions{
		Spreadsheet: filepath.Join(dir, "authors.csv"),
		Output:      filepath.Join(dir, "authors.xml"),
		Now:         fixedNow,
	}
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readOutput(t *testing.T, path string) *authorlist.Document {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()

	doc, err := authorlist.Parse(f)
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	return doc
}

func TestGenerateMissingConfig(t *testing.T) {
	dir, opts := setup(t)
	opts.ConfigPath = filepath.Join(dir, "missing.toml")

	var stdout, stderr bytes.Buffer
	opts.Stderr = &stderr
	if err := runGenerate(opts, &stdout); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	want := "Error: config file '" + opts.ConfigPath + "' not found.\n"
	if stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}

	doc := readOutput(t, opts.Output)
	if doc.PublicationReference != "" {
		t.Errorf("PublicationReference = %q, want empty", doc.PublicationReference)
	}
	if len(doc.Authors.Persons) != 2 {
		t.Fatalf("authors = %d, want 2", len(doc.Authors.Persons))
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout without schema: %q", stdout.String())
	}
}

func TestGenerateMinimal(t *testing.T) {
	dir, opts := setup(t)
	opts.ConfigPath = writeTestFile(t, dir, "paper.toml", `pub_ref = "arXiv:2401.00001"`+"\n")

	if err := runGenerate(opts, &bytes.Buffer{}); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	doc := readOutput(t, opts.Output)
	if doc.PublicationReference != "arXiv:2401.00001" {
		t.Errorf("PublicationReference = %q", doc.PublicationReference)
	}
	if doc.CreationDate != "2024-03-05" {
		t.Errorf("CreationDate = %q", doc.CreationDate)
	}
	if doc.Collaborations != nil {
		t.Error("minimal profile wrote collaborations")
	}

	// sorted by the order column: Ada first
	if got := doc.Authors.Persons[0].FamilyName; got != "Lovelace" {
		t.Errorf("first author = %q, want Lovelace", got)
	}
	// lexicographic: Shared Lab = a1, Unique Institute = a2
	if got := doc.Organizations.Items[0].Name; got != "Shared Lab" {
		t.Errorf("a1 = %q, want Shared Lab", got)
	}
	if got := strings.Join(doc.Authors.Persons[1].AffiliationIDs(), " "); got != "a2 a1" {
		t.Errorf("Turing affiliations = %q, want %q", got, "a2 a1")
	}
	if err := doc.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
}

func TestGenerateProfileOverrides(t *testing.T) {
	_, opts := setup(t)
	opts.ProfileName = "collaboration"
	opts.Ordering = "lexicographic"

	if err := runGenerate(opts, &bytes.Buffer{}); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	doc := readOutput(t, opts.Output)
	if doc.CreationDate != "2024-03-05_14:07" {
		t.Errorf("CreationDate = %q", doc.CreationDate)
	}
	if doc.Collaborations == nil {
		t.Error("collaboration profile should write collaborations")
	}
	if got := doc.Organizations.Items[0].Name; got != "Shared Lab" {
		t.Errorf("a1 = %q, want Shared Lab", got)
	}
	if got := doc.Authors.Persons[0].PaperName; got != "A. Lovelace" {
		t.Errorf("PaperName = %q", got)
	}
}

func TestGenerateProfileFile(t *testing.T) {
	dir, opts := setup(t)
	opts.ProfileFile = writeTestFile(t, dir, "custom.yaml", "ordering: first-seen\ninclude_collaboration: true\ncollaboration:\n  name: ATLAS\n")

	if err := runGenerate(opts, &bytes.Buffer{}); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	doc := readOutput(t, opts.Output)
	if doc.Collaborations == nil || doc.Collaborations.Items[0].Name != "ATLAS" {
		t.Errorf("collaborations = %+v", doc.Collaborations)
	}
	if got := doc.Organizations.Items[0].Name; got != "Shared Lab" {
		t.Errorf("first-seen a1 = %q, want Shared Lab", got)
	}
}

func TestGenerateSchemaVerdict(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		want   string
	}{
		{"valid", laxSchema, "Valid"},
		{"invalid", strictSchema, "Invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, opts := setup(t)
			opts.SchemaPath = writeTestFile(t, dir, "schema.xsd", tt.schema)

			var stdout bytes.Buffer
			if err := runGenerate(opts, &stdout); err != nil {
				t.Fatalf("runGenerate: %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("verdict = %q, want it to contain %q", stdout.String(), tt.want)
			}
			readOutput(t, opts.Output)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(dir string, o *generateOptions)
		wantErr error
	}{
		{
			name:    "missing spreadsheet",
			mutate:  func(dir string, o *generateOptions) { o.Spreadsheet = filepath.Join(dir, "nope.csv") },
			wantErr: table.ErrRead,
		},
		{
			name:    "unknown profile",
			mutate:  func(_ string, o *generateOptions) { o.ProfileName = "nope" },
			wantErr: profile.ErrUnknownProfile,
		},
		{
			name:   "bad ordering override",
			mutate: func(_ string, o *generateOptions) { o.Ordering = "random" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, opts := setup(t)
			tt.mutate(dir, &opts)

			err := runGenerate(opts, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if _, statErr := os.Stat(opts.Output); statErr == nil {
				t.Error("output written despite error")
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	dir, opts := setup(t)
	if err := runGenerate(opts, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	lax := writeTestFile(t, dir, "lax.xsd", laxSchema)
	strict := writeTestFile(t, dir, "strict.xsd", strictSchema)

	var stdout bytes.Buffer
	if err := runValidate(opts.Output, lax, true, &stdout); err != nil {
		t.Fatalf("runValidate: %v\n%s", err, stdout.String())
	}
	if !strings.Contains(stdout.String(), "References: ok") {
		t.Errorf("verbose output = %q", stdout.String())
	}

	stdout.Reset()
	err := runValidate(opts.Output, strict, false, &stdout)
	if !errors.Is(err, errInvalid) {
		t.Errorf("error = %v, want errInvalid", err)
	}
	if !strings.Contains(stdout.String(), "Invalid") {
		t.Errorf("verdict = %q", stdout.String())
	}

	if err := runValidate(filepath.Join(dir, "nope.xml"), lax, false, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing document")
	}
}
