package shell

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleTokenize() {
	fmt.Printf("%q\n", Tokenize("  ls   -la  /tmp "))
	fmt.Printf("%q\n", Tokenize(`echo "hello world"`))

	// Output: ["ls" "-la" "/tmp"]
	// ["echo" "\"hello" "world\""]
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple command",
			input:    "echo hello",
			expected: []string{"echo", "hello"},
		},
		{
			name:     "leading and trailing blanks",
			input:    "  ls   -la  /tmp ",
			expected: []string{"ls", "-la", "/tmp"},
		},
		{
			name:     "every delimiter",
			input:    "a\tb\rc\nd\ae f",
			expected: []string{"a", "b", "c", "d", "e", "f"},
		},
		{
			name:     "mixed runs collapse",
			input:    " \t\a\r\n cd \t\a /tmp\r\n",
			expected: []string{"cd", "/tmp"},
		},
		{
			name:     "quotes are ordinary characters",
			input:    `echo 'hello world'`,
			expected: []string{"echo", "'hello", "world'"},
		},
		{
			name:     "backslashes are ordinary characters",
			input:    `echo hello\ world`,
			expected: []string{"echo", `hello\`, "world"},
		},
		{
			name:     "no variable expansion",
			input:    "echo $HOME",
			expected: []string{"echo", "$HOME"},
		},
		{
			name:     "other whitespace is not a delimiter",
			input:    "a\vb\fc",
			expected: []string{"a\vb\fc"},
		},
		{
			name:     "unicode words",
			input:    "echo héllo 世界",
			expected: []string{"echo", "héllo", "世界"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_blank(t *testing.T) {
	for _, input := range []string{"", " ", "\t", "\r\n", "\a", " \t\r\n\a \t\r\n\a"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			assert.Empty(t, Tokenize(input))
		})
	}
}

func TestTokenize_unbounded(t *testing.T) {
	words := make([]string, 10000)
	for i := range words {
		words[i] = fmt.Sprintf("arg%d", i)
	}

	got := Tokenize(strings.Join(words, " "))
	assert.Equal(t, words, got)
}
