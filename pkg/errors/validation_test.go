package errors

import (
	"strings"
	"testing"
)

func TestValidateElementName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Logo", false},
		{"valid with spaces", "Company Logo v2", false},
		{"valid with punctuation", "Logo (front, 2x)", false},
		{"valid unicode", "Bürklin", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 101), true},
		{"newline", "foo\nbar", true},
		{"tab", "foo\tbar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateElementName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateElementName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"two segments", "0.1", false},
		{"three segments", "0.1.0", false},
		{"large numbers", "12.345.6789", false},
		{"single segment", "1", false},

		{"empty", "", true},
		{"leading v", "v1.0", true},
		{"trailing dot", "1.0.", true},
		{"prerelease suffix", "1.0.0-rc1", true},
		{"letters", "one.two", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "0c6b0a73-764b-4e2c-a2a7-b707eae48a6b", false},
		{"valid all zeros", "00000000-0000-0000-0000-000000000000", false},

		{"empty", "", true},
		{"uppercase", "0C6B0A73-764B-4E2C-A2A7-B707EAE48A6B", true},
		{"missing group", "0c6b0a73-764b-4e2c-a2a7", true},
		{"no dashes", "0c6b0a73764b4e2ca2a7b707eae48a6b", true},
		{"braced", "{0c6b0a73-764b-4e2c-a2a7-b707eae48a6b}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUUID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUUID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
