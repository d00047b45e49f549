package personsmodel

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/jumppad-labs/personsmodel/convert"
	"github.com/mailgun/raymond/v2"
	"github.com/mitchellh/go-wordwrap"
)

// PrintFormat represents different output formats for the pretty printer
type PrintFormat string

const (
	FormatTable    PrintFormat = "table"
	FormatJSON     PrintFormat = "json"
	FormatTemplate PrintFormat = "template"
)

// PrinterOptions configures the EntryPrinter behavior
type PrinterOptions struct {
	// Output writer (defaults to os.Stdout)
	Writer io.Writer
	// Enable/disable color output (auto-detected by default)
	ColorEnabled *bool
	// Maximum width of the table
	MaxWidth int
	// Show all fields including unset ones
	ShowEmpty bool
	// Handlebars template used by FormatTemplate
	Template string
}

// PrinterOption is a functional option for configuring the printer
type PrinterOption func(*PrinterOptions)

// WithWriter sets the output writer
func WithWriter(w io.Writer) PrinterOption {
	return func(o *PrinterOptions) {
		o.Writer = w
	}
}

// WithColor enables or disables color output
func WithColor(enabled bool) PrinterOption {
	return func(o *PrinterOptions) {
		o.ColorEnabled = &enabled
	}
}

// WithMaxWidth sets the width of the table
func WithMaxWidth(width int) PrinterOption {
	return func(o *PrinterOptions) {
		o.MaxWidth = width
	}
}

// WithShowEmpty shows all fields including unset ones
func WithShowEmpty(show bool) PrinterOption {
	return func(o *PrinterOptions) {
		o.ShowEmpty = show
	}
}

// WithTemplate sets the template used by FormatTemplate
func WithTemplate(tmpl string) PrinterOption {
	return func(o *PrinterOptions) {
		o.Template = tmpl
	}
}

// EntryPrinter prints loaded entries along with their completeness
type EntryPrinter struct {
	options PrinterOptions
	colors  struct {
		complete   color.Attribute
		incomplete color.Attribute
		header     color.Attribute
		field      color.Attribute
		value      color.Attribute
	}
}

// NewEntryPrinter creates a new EntryPrinter with the given options
func NewEntryPrinter(opts ...PrinterOption) *EntryPrinter {
	options := PrinterOptions{
		Writer:   os.Stdout,
		MaxWidth: 80,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.ColorEnabled == nil {
		enabled := !color.NoColor
		options.ColorEnabled = &enabled
	}

	p := &EntryPrinter{options: options}

	p.colors.complete = color.FgGreen
	p.colors.incomplete = color.FgRed
	p.colors.header = color.FgCyan
	p.colors.field = color.FgBlue
	p.colors.value = color.FgWhite

	return p
}

// PrintEntry prints a single entry in the specified format
func (p *EntryPrinter) PrintEntry(e *Entry, format PrintFormat) error {
	switch format {
	case FormatTable:
		return p.printTable(e)
	case FormatJSON:
		return p.printJSON(newEntryJSON(e))
	case FormatTemplate:
		return p.printTemplate(e)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintEntries prints entries in the specified format, json output is a
// single array
func (p *EntryPrinter) PrintEntries(entries []*Entry, format PrintFormat) error {
	if format == FormatJSON {
		out := make([]entryJSON, 0, len(entries))
		for _, e := range entries {
			out = append(out, newEntryJSON(e))
		}

		return p.printJSON(out)
	}

	for i, e := range entries {
		if i > 0 && format == FormatTable {
			fmt.Fprintln(p.options.Writer)
		}

		if err := p.PrintEntry(e, format); err != nil {
			return err
		}
	}

	return nil
}

func (p *EntryPrinter) sprint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if *p.options.ColorEnabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(s)
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// visualLength returns the visual length of a string, excluding ANSI escape codes
func visualLength(s string) int {
	return len([]rune(ansiRegex.ReplaceAllString(s, "")))
}

// truncate shortens s to at most n runes, ending it with "..." when it is
// cut
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-3]) + "..."
}

type field struct {
	name  string
	value string
	attr  color.Attribute
}

func (p *EntryPrinter) tableFields(e *Entry) []field {
	status := "yes"
	statusAttr := p.colors.complete
	if !e.Entity.IsComplete() {
		status = "no"
		statusAttr = p.colors.incomplete
	}

	fields := []field{
		{"Type", e.Type, p.colors.value},
		{"File", fmt.Sprintf("%s:%d", e.File, e.Line), p.colors.value},
		{"Complete", status, statusAttr},
	}

	if missing := e.Entity.GetMissing(); len(missing) > 0 {
		fields = append(fields, field{"Missing", strings.Join(missing, ", "), p.colors.incomplete})
	}

	for _, name := range e.Entity.Schema().Names() {
		v, _ := e.Entity.Get(name)
		if !e.Entity.IsSet(name) && !p.options.ShowEmpty {
			continue
		}

		fields = append(fields, field{name, convert.FormatValue(v), p.colors.value})
	}

	return fields
}

// printTable prints an entry in table format with borders
func (p *EntryPrinter) printTable(e *Entry) error {
	width := max(p.options.MaxWidth, 40)
	w := p.options.Writer

	header := truncate(fmt.Sprintf("Resource: %s", e.ID()), width-4)

	fmt.Fprintf(w, "┌%s┐\n", strings.Repeat("─", width-2))

	headerColored := p.sprint(p.colors.header, header)
	fmt.Fprintf(w, "│ %s%s │\n", headerColored, strings.Repeat(" ", max(width-visualLength(headerColored)-4, 0)))

	fmt.Fprintf(w, "├%s┤\n", strings.Repeat("─", width-2))

	for _, f := range p.tableFields(e) {
		label := f.name + ":"

		// "│ " + label + " " + value + " │"
		maxValueWidth := max(width-len(label)-6, 10)
		lines := strings.Split(wordwrap.WrapString(f.value, uint(maxValueWidth)), "\n")

		for i, line := range lines {
			// wordwrap does not split words longer than the limit
			line = truncate(line, maxValueWidth)

			prefix := strings.Repeat(" ", len(label))
			if i == 0 {
				prefix = p.sprint(p.colors.field, label)
			}

			coloredLine := line
			if line != "" {
				coloredLine = p.sprint(f.attr, line)
			}

			padding := max(width-(2+visualLength(prefix)+1+visualLength(coloredLine)+2), 0)
			fmt.Fprintf(w, "│ %s %s%s │\n", prefix, coloredLine, strings.Repeat(" ", padding))
		}
	}

	fmt.Fprintf(w, "└%s┘\n", strings.Repeat("─", width-2))

	return nil
}

type entryJSON struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	File     string         `json:"file"`
	Line     int            `json:"line"`
	Complete bool           `json:"complete"`
	Missing  []string       `json:"missing"`
	Values   map[string]any `json:"values"`
}

func newEntryJSON(e *Entry) entryJSON {
	return entryJSON{
		ID:       e.ID(),
		Type:     e.Type,
		Name:     e.Name,
		File:     e.File,
		Line:     e.Line,
		Complete: e.Entity.IsComplete(),
		Missing:  e.Entity.GetMissing(),
		Values:   convert.ParseVars(e.Entity.Values()),
	}
}

// printJSON prints v as indented JSON with basic syntax highlighting
func (p *EntryPrinter) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry to JSON: %w", err)
	}

	out := string(data)
	if *p.options.ColorEnabled {
		out = p.highlightJSON(out)
	}

	fmt.Fprintln(p.options.Writer, out)

	return nil
}

// highlightJSON provides basic syntax highlighting for JSON output
func (p *EntryPrinter) highlightJSON(jsonStr string) string {
	lines := strings.Split(jsonStr, "\n")
	for i, line := range lines {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		valuePart := parts[1]
		if strings.Contains(valuePart, "\"") && !strings.HasSuffix(strings.TrimSpace(valuePart), "{") {
			valuePart = p.sprint(p.colors.value, valuePart)
		}

		lines[i] = p.sprint(p.colors.field, parts[0]) + ":" + valuePart
	}

	return strings.Join(lines, "\n")
}

// templateContext returns the values available to templates, entity fields
// are under values, i.e. {{values.displayName}}
func templateContext(e *Entry) map[string]any {
	return map[string]any{
		"id":       e.ID(),
		"type":     e.Type,
		"name":     e.Name,
		"file":     e.File,
		"line":     e.Line,
		"complete": e.Entity.IsComplete(),
		"missing":  e.Entity.GetMissing(),
		"values":   convert.ParseVars(e.Entity.Values()),
	}
}

// printTemplate renders the handlebars template in the options for the entry
func (p *EntryPrinter) printTemplate(e *Entry) error {
	if p.options.Template == "" {
		return fmt.Errorf("no template set, use WithTemplate to set a template")
	}

	tmpl, err := raymond.Parse(p.options.Template)
	if err != nil {
		return fmt.Errorf("error parsing template: %s", err)
	}

	tmpl.RegisterHelpers(map[string]any{
		"quote": func(in string) string {
			return fmt.Sprintf(`"%s"`, in)
		},
		"trim": func(in string) string {
			return strings.TrimSpace(in)
		},
	})

	result, err := tmpl.Exec(templateContext(e))
	if err != nil {
		return fmt.Errorf("error processing template: %s", err)
	}

	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	_, err = io.WriteString(p.options.Writer, result)

	return err
}
