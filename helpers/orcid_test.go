package helpers

import "testing"

func TestNormalizeORCID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"https://orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{" http://orcid.org/0000-0002-1694-233X ", "0000-0002-1694-233X"},
		{"not an orcid", "not an orcid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeORCID(tt.input); got != tt.expected {
				t.Errorf("NormalizeORCID(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCheckORCID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"0000-0002-1825-0097", false},
		{"https://orcid.org/0000-0001-5109-3700", false},
		{"0000-0002-1694-233X", false},
		{"0000-0002-1825-0098", true},
		{"0000-0002-1825", true},
		{"abcd-0002-1825-0097", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := CheckORCID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckORCID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
