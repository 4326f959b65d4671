// Package tokenizer turns raw delimited text into rows of trimmed fields.
//
// It exists because bank exports are not well-formed CSV: quoted fields may
// span several lines, stray carriage returns appear mid-row, and trailing
// blank lines are common. The rules here are deliberately lenient; field
// count validation is the caller's responsibility.
package tokenizer

import "strings"

// DefaultDelimiter is the field separator of the supported export formats.
const DefaultDelimiter = ';'

// Tokenize splits raw text into rows of trimmed field strings.
//
// A field starting with a double quote enters quoted mode, where "" is an
// escaped literal quote and any other character (including row terminators)
// is field content. Outside quoted mode the delimiter ends a field, \n or
// \r\n ends a row, and a lone \r is dropped. Rows whose fields are all empty
// are discarded. The final field and row are flushed at end of input even
// without a trailing terminator.
func Tokenize(text string, delimiter rune) [][]string {
	var rows [][]string
	var currentRow []string
	var field strings.Builder
	insideQuotes := false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		char := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		if insideQuotes {
			if char == '"' {
				if next == '"' {
					field.WriteRune('"')
					i++
				} else {
					insideQuotes = false
				}
			} else {
				field.WriteRune(char)
			}
			continue
		}

		switch {
		case char == '"':
			insideQuotes = true
		case char == delimiter:
			currentRow = append(currentRow, strings.TrimSpace(field.String()))
			field.Reset()
		case char == '\n' || (char == '\r' && next == '\n'):
			currentRow = append(currentRow, strings.TrimSpace(field.String()))
			rows = appendRow(rows, currentRow)
			currentRow = nil
			field.Reset()
			if char == '\r' {
				i++
			}
		case char == '\r':
			// dropped
		default:
			field.WriteRune(char)
		}
	}

	if field.Len() > 0 || len(currentRow) > 0 {
		currentRow = append(currentRow, strings.TrimSpace(field.String()))
		rows = appendRow(rows, currentRow)
	}

	return rows
}

// appendRow keeps a row only when at least one field is non-empty. This
// guards against trailing blank lines and stray terminators.
func appendRow(rows [][]string, row []string) [][]string {
	for _, f := range row {
		if f != "" {
			return append(rows, row)
		}
	}
	return rows
}
