package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTabular_SimpleRows(t *testing.T) {
	rows := ParseTabular("a,b,c\nd,e,f\n")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"d", "e", "f"}, rows[1])
}

func TestParseTabular_QuotedComma(t *testing.T) {
	rows := ParseTabular(`id,"Bangalore, India",x`)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"id", "Bangalore, India", "x"}, rows[0])
}

func TestParseTabular_EscapedQuote(t *testing.T) {
	rows := ParseTabular(`a,"he said ""hi""",c`)

	require.Len(t, rows, 1)
	assert.Equal(t, `he said "hi"`, rows[0][1])
}

func TestParseTabular_NewlineInsideQuotes(t *testing.T) {
	rows := ParseTabular("a,\"line one\nline two\",c\nd,e,f")

	require.Len(t, rows, 2)
	assert.Equal(t, "line one\nline two", rows[0][1])
	assert.Equal(t, []string{"d", "e", "f"}, rows[1])
}

func TestParseTabular_CRLFAndBareCR(t *testing.T) {
	rows := ParseTabular("a,b\r\nc,d\re,f")

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"c", "d"}, rows[1])
	assert.Equal(t, []string{"e", "f"}, rows[2])
}

func TestParseTabular_BlankLinesSkipped(t *testing.T) {
	rows := ParseTabular("a,b\n\n\nc,d\n")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestParseTabular_TrailingRowWithoutNewline(t *testing.T) {
	rows := ParseTabular("a,b\nc,d")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestParseTabular_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseTabular(""))
	assert.Empty(t, ParseTabular("\n\n"))
}

func TestParseTabular_EmptyFieldsPreserved(t *testing.T) {
	rows := ParseTabular("a,,c\n")

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "", "c"}, rows[0])
}

func TestParseTabular_SingleEmptyFieldLineSkipped(t *testing.T) {
	// A line that decodes to exactly one empty field is indistinguishable
	// from a blank line and is dropped; a two-field empty row is kept.
	rows := ParseTabular("\"\"\n,\n")

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"", ""}, rows[0])
}
