package tokenizer_test

import (
	"testing"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/tokenizer"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{
			name:  "simple rows",
			input: "a;b;c\nd;e;f",
			expected: [][]string{
				{"a", "b", "c"},
				{"d", "e", "f"},
			},
		},
		{
			name:  "no trailing newline flushes last row",
			input: "a;b\nc;d",
			expected: [][]string{
				{"a", "b"},
				{"c", "d"},
			},
		},
		{
			name:  "windows line endings",
			input: "a;b\r\nc;d\r\n",
			expected: [][]string{
				{"a", "b"},
				{"c", "d"},
			},
		},
		{
			name:  "lone carriage return is dropped",
			input: "a\rb;c\n",
			expected: [][]string{
				{"ab", "c"},
			},
		},
		{
			name:  "fields are trimmed",
			input: " a ; b b ;  c\n",
			expected: [][]string{
				{"a", "b b", "c"},
			},
		},
		{
			name:  "quoted field keeps delimiter",
			input: `"a;b";c`,
			expected: [][]string{
				{"a;b", "c"},
			},
		},
		{
			name:  "quoted field spans lines",
			input: "\"a\nb\";c\nd;e",
			expected: [][]string{
				{"a\nb", "c"},
				{"d", "e"},
			},
		},
		{
			name:  "escaped quote inside quoted field",
			input: `"say ""hi""";x`,
			expected: [][]string{
				{`say "hi"`, "x"},
			},
		},
		{
			name:     "blank lines are discarded",
			input:    "a;b\n\n\nc;d\n",
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:     "all-empty row is discarded",
			input:    ";;;\na;b\n",
			expected: [][]string{{"a", "b"}},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "unterminated quote flushes at end of input",
			input: `a;"never closed`,
			expected: [][]string{
				{"a", "never closed"},
			},
		},
		{
			name:  "empty fields inside a row are kept",
			input: "a;;c\n",
			expected: [][]string{
				{"a", "", "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tokenizer.Tokenize(tt.input, tokenizer.DefaultDelimiter)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTokenizeCustomDelimiter(t *testing.T) {
	result := tokenizer.Tokenize("a,b,c\nd,e,f\n", ',')
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}}, result)
}
