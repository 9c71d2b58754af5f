// Package dataset parses the flat-file candidate datasets (a quote-escaped
// comma-separated GitHub export and a line-delimited JSON LinkedIn export)
// and maps their records into canonical profiles.
package dataset

import "strings"

// ParseTabular converts raw comma-separated text into an ordered sequence of
// rows, header row included. Fields may be wrapped in double quotes; inside
// quotes a comma or line terminator is part of the field value and a doubled
// quote ("") decodes to one literal quote. \r\n, \r and \n outside quotes all
// terminate a row. A partially built row at end of input is flushed as the
// final row. Blank lines produce no row; any other structural validation
// (minimum column count, identifier presence) belongs to the caller.
func ParseTabular(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		if len(row) > 1 || row[0] != "" {
			rows = append(rows, row)
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			endField()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}
	return rows
}
