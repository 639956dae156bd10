package service

import (
	"reflect"
	"testing"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected []string
	}{
		{
			name:     "dash bullets",
			reply:    "- Take one more AP science course\n- Retake the SAT in the fall",
			expected: []string{"Take one more AP science course", "Retake the SAT in the fall"},
		},
		{
			name:     "numbered list",
			reply:    "1. Strengthen your essay opening\n2) Add a leadership role",
			expected: []string{"Strengthen your essay opening", "Add a leadership role"},
		},
		{
			name:     "preamble is skipped",
			reply:    "Here are my suggestions:\n- Focus on math\n- Ask for recommendation letters early",
			expected: []string{"Focus on math", "Ask for recommendation letters early"},
		},
		{
			name:     "no bullets keeps whole reply",
			reply:    "Your profile looks strong overall. Keep your grades up.",
			expected: []string{"Your profile looks strong overall. Keep your grades up."},
		},
		{
			name:     "blank lines ignored",
			reply:    "\n- Only one suggestion\n\n",
			expected: []string{"Only one suggestion"},
		},
		{
			name:     "empty reply",
			reply:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseSuggestions(tt.reply)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("parseSuggestions() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		line     string
		expected string
		isItem   bool
	}{
		{"- plain dash", "plain dash", true},
		{"* asterisk", "asterisk", true},
		{"3. numbered", "numbered", true},
		{"10) double digit", "double digit", true},
		{"no marker here", "", false},
		{"2024 was a good year", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			result, ok := stripBullet(tt.line)
			if ok != tt.isItem {
				t.Fatalf("stripBullet(%q) ok = %v, want %v", tt.line, ok, tt.isItem)
			}
			if ok && result != tt.expected {
				t.Errorf("stripBullet(%q) = %q, want %q", tt.line, result, tt.expected)
			}
		})
	}
}
