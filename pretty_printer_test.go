package personsmodel

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func setupPrinterEntries(t *testing.T) []*Entry {
	c, err := setupParser(t).ParseFile("./test_fixtures/single_file/persons.hcl")
	require.NoError(t, err)

	return c.Entries
}

func TestPrintTableShowsCompleteness(t *testing.T) {
	entries := setupPrinterEntries(t)
	out := &bytes.Buffer{}

	p := NewEntryPrinter(WithWriter(out), WithColor(false), WithMaxWidth(80))
	require.NoError(t, p.PrintEntry(entries[0], FormatTable))

	require.Contains(t, out.String(), "Resource: person.foo")
	require.Contains(t, out.String(), "Complete: no")
	require.Contains(t, out.String(), "Missing: addresses")
	require.Contains(t, out.String(), "displayName: foo")
	require.NotContains(t, out.String(), "givenName:")
	require.NotContains(t, out.String(), "\x1b[")

	for _, l := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		require.Equal(t, 80, visualLength(l), l)
	}
}

func TestPrintTableShowsEmptyFields(t *testing.T) {
	entries := setupPrinterEntries(t)
	out := &bytes.Buffer{}

	p := NewEntryPrinter(WithWriter(out), WithColor(false), WithShowEmpty(true))
	require.NoError(t, p.PrintEntry(entries[0], FormatTable))

	require.Contains(t, out.String(), "givenName:")
}

func TestPrintTableWithColor(t *testing.T) {
	entries := setupPrinterEntries(t)
	out := &bytes.Buffer{}

	p := NewEntryPrinter(WithWriter(out), WithColor(true))
	require.NoError(t, p.PrintEntries(entries, FormatTable))

	require.Contains(t, out.String(), "\x1b[")
	require.Contains(t, out.String(), "Resource: person.bar")
}

func TestPrintEntriesAsJSON(t *testing.T) {
	entries := setupPrinterEntries(t)
	out := &bytes.Buffer{}

	p := NewEntryPrinter(WithWriter(out), WithColor(false))
	require.NoError(t, p.PrintEntries(entries, FormatJSON))

	doc := []map[string]any{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc, 2)

	require.Equal(t, "person.foo", doc[0]["id"])
	require.Equal(t, false, doc[0]["complete"])
	require.Equal(t, []any{"addresses"}, doc[0]["missing"])

	values := doc[0]["values"].(map[string]any)
	require.Equal(t, "foo", values["displayName"])
	require.NotContains(t, values, "addresses")

	require.Equal(t, true, doc[1]["complete"])
	require.Equal(t, []any{}, doc[1]["values"].(map[string]any)["addresses"])
}

func TestPrintEntriesWithTemplate(t *testing.T) {
	entries := setupPrinterEntries(t)
	out := &bytes.Buffer{}

	p := NewEntryPrinter(
		WithWriter(out),
		WithTemplate(`{{id}} {{{quote values.displayName}}} {{#if complete}}complete{{else}}incomplete{{/if}}`),
	)
	require.NoError(t, p.PrintEntries(entries, FormatTemplate))

	require.Equal(t, "person.foo \"foo\" incomplete\nperson.bar \"BAR\" complete\n", out.String())
}

func TestPrintTemplateFailsWithoutTemplate(t *testing.T) {
	entries := setupPrinterEntries(t)

	p := NewEntryPrinter(WithWriter(&bytes.Buffer{}))
	require.Error(t, p.PrintEntry(entries[0], FormatTemplate))
}

func TestPrintFailsForUnsupportedFormat(t *testing.T) {
	entries := setupPrinterEntries(t)

	p := NewEntryPrinter(WithWriter(&bytes.Buffer{}))
	require.ErrorContains(t, p.PrintEntry(entries[0], "yaml"), "unsupported format: yaml")
}

func TestPrintTableTruncatesMultiByteValues(t *testing.T) {
	name := strings.Repeat("é", 100)
	e := testEntry(t, name, map[string]cty.Value{
		"displayName": cty.StringVal(strings.Repeat("ü", 200)),
	})
	out := &bytes.Buffer{}

	p := NewEntryPrinter(WithWriter(out), WithColor(false), WithMaxWidth(60))
	require.NoError(t, p.PrintEntry(e, FormatTable))

	require.True(t, utf8.ValidString(out.String()))
	require.Contains(t, out.String(), "Resource: person.éé")
	require.Contains(t, out.String(), "üü...")

	for _, l := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		require.Equal(t, 60, visualLength(l), l)
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", truncate("abc", 10))
	require.Equal(t, "ééé...", truncate(strings.Repeat("é", 10), 6))
}
