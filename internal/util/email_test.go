package util

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "jane@example.com",
			expected: "jane@example.com",
		},
		{
			name:     "uppercase",
			input:    "Jane@Example.COM",
			expected: "jane@example.com",
		},
		{
			name:     "surrounding whitespace",
			input:    "  jane@example.com \n",
			expected: "jane@example.com",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEmail(tt.input); got != tt.expected {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain address", "jane@example.com", true},
		{"subdomain", "jane@mail.example.co.uk", true},
		{"plus tag", "jane+news@example.com", true},
		{"missing at", "janeexample.com", false},
		{"missing domain", "jane@", false},
		{"display name", "Jane <jane@example.com>", false},
		{"empty", "", false},
		{"spaces inside", "jane doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
