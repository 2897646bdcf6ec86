package version

import "testing"

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		build    string
		expected string
	}{
		{"", "0.9.3"},
		{"dev-42", "0.9.3-dev-42"},
		{"bad build", "0.9.3"},
		{"ünicode", "0.9.3"},
	}

	for _, test := range tests {
		if result := formatVersion(test.build); result != test.expected {
			t.Errorf("formatVersion(%q): expected %q, got %q", test.build, test.expected, result)
		}
	}
}
