package table

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/authorlist/roster"
)

type stubReader struct {
	grid [][]roster.Field
	err  error
}

func (s *stubReader) Name() string         { return "stub" }
func (s *stubReader) Description() string  { return "test reader" }
func (s *stubReader) Extensions() []string { return []string{"stub"} }
func (s *stubReader) Read(string, *ReadOptions) ([][]roster.Field, error) {
	return s.grid, s.err
}

func cells(values ...string) []roster.Field {
	out := make([]roster.Field, len(values))
	for i, v := range values {
		out[i] = roster.Text(v)
	}
	return out
}

func withKey(given, key string) []roster.Field {
	c := cells(given, "", "Family", "", "", "", "", "", key)
	return c
}

func TestRegistryLoad(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubReader{grid: [][]roster.Field{
		cells("First", "Abbrev", "Last"),
		cells("Ada", "A.", "Lovelace"),
		nil,
		cells("Alan", "A.", "Turing"),
	}})

	rows, err := r.Load("authors.stub", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].GivenName.String() != "Ada" || rows[1].GivenName.String() != "Alan" {
		t.Errorf("row order changed without sort key: %q, %q", rows[0].GivenName.String(), rows[1].GivenName.String())
	}

	rows, err = r.Load("authors.stub", &ReadOptions{Header: false})
	if err != nil {
		t.Fatalf("Load without header: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("got %d rows without header skipping, want 3", len(rows))
	}
}

func TestRegistryLoadErrors(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubReader{err: errors.New("boom")})

	tests := []struct {
		name string
		path string
		opts *ReadOptions
	}{
		{"reader failure", "authors.stub", nil},
		{"unknown extension", "authors.pdf", nil},
		{"unknown forced format", "authors.stub", &ReadOptions{Format: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Load(tt.path, tt.opts); !errors.Is(err, ErrRead) {
				t.Errorf("err = %v, want ErrRead", err)
			}
		})
	}
}

func TestSortByKey(t *testing.T) {
	rows := []roster.Row{
		roster.RowFromCells(withKey("ten", "10")),
		roster.RowFromCells(withKey("none", "")),
		roster.RowFromCells(withKey("two", "2")),
		roster.RowFromCells(withKey("two-b", "2")),
		roster.RowFromCells(withKey("alpha", "b")),
	}

	if !SortByKey(rows) {
		t.Fatal("SortByKey reported no keys")
	}

	want := []string{"two", "two-b", "ten", "alpha", "none"}
	for i, w := range want {
		if got := rows[i].GivenName.String(); got != w {
			t.Errorf("rows[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestSortByKeyMixedKeys(t *testing.T) {
	inputs := [][]string{
		{"10", "1a", "2"},
		{"1a", "2", "10"},
		{"2", "10", "1a"},
		{"NaN", "2", "Inf", "10"},
	}
	wants := [][]string{
		{"2", "10", "1a"},
		{"2", "10", "1a"},
		{"2", "10", "1a"},
		{"2", "10", "Inf", "NaN"},
	}

	for i, keys := range inputs {
		t.Run(strings.Join(keys, ","), func(t *testing.T) {
			rows := make([]roster.Row, 0, len(keys))
			for _, k := range keys {
				rows = append(rows, roster.RowFromCells(withKey(k, k)))
			}
			SortByKey(rows)

			var got []string
			for _, row := range rows {
				got = append(got, row.SortKey.String())
			}
			if !reflect.DeepEqual(got, wants[i]) {
				t.Errorf("order = %v, want %v", got, wants[i])
			}
		})
	}
}

func TestRegistryLoadLeadingBlankRows(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubReader{grid: [][]roster.Field{
		nil,
		cells("", " "),
		cells("First", "Abbrev", "Last"),
		cells("Ada", "A.", "Lovelace"),
	}})

	rows, err := r.Load("authors.stub", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 || rows[0].GivenName.String() != "Ada" {
		t.Errorf("header row treated as author: %+v", rows)
	}
}

func TestSortByKeyWithoutKeys(t *testing.T) {
	rows := []roster.Row{
		roster.RowFromCells(withKey("b", "")),
		roster.RowFromCells(withKey("a", "")),
	}
	if SortByKey(rows) {
		t.Error("SortByKey reported keys where there are none")
	}
	if rows[0].GivenName.String() != "b" {
		t.Error("rows reordered without keys")
	}
}

func TestDetectFormat(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubReader{})

	if _, err := r.DetectFormat("AUTHORS.STUB"); err != nil {
		t.Errorf("DetectFormat upper-case extension: %v", err)
	}
	if got := r.List(); len(got) != 1 || got[0] != "stub" {
		t.Errorf("List() = %v", got)
	}
}
