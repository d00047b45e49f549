package personsmodel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/jumppad-labs/personsmodel/logger"
	"github.com/jumppad-labs/personsmodel/resources"
	"github.com/jumppad-labs/personsmodel/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

type ParserOptions struct {
	Logger logger.Logger

	// IgnoreUnknown drops attributes that are not part of the resource
	// schema instead of failing
	IgnoreUnknown bool

	// Variables are exposed to config files as var.<name>
	Variables map[string]string

	// VariableEnvPrefix is the prefix of environment variables that are
	// added to Variables, i.e. PERSONS_VAR_phone sets var.phone. Values set
	// in the environment override values in Variables.
	VariableEnvPrefix string
}

// DefaultOptions returns ParserOptions with the VariableEnvPrefix set to
// 'PERSONS_VAR_' and a logger that discards output
func DefaultOptions() *ParserOptions {
	return &ParserOptions{
		Logger:            logger.NopLogger{},
		Variables:         map[string]string{},
		VariableEnvPrefix: "PERSONS_VAR_",
	}
}

// Parser loads entities from HCL config files. Every top level block in a
// file is an entity, the block type selects the registered resource and
// the single label names the entity:
//
//	person "bob" {
//	  displayName = "Bob Woodward"
//	  addresses   = []
//	}
type Parser struct {
	options  ParserOptions
	registry *resources.Registry
	// functions registered by the caller, merged with the default
	// functions for every file
	functions map[string]function.Function
}

// NewParser creates a parser for the resources in registry, if options are
// nil default options are used
func NewParser(registry *resources.Registry, options *ParserOptions) *Parser {
	o := options
	if o == nil {
		o = DefaultOptions()
	}

	p := &Parser{
		options:   *o,
		registry:  registry,
		functions: map[string]function.Function{},
	}
	p.options.Logger = logger.OrNop(o.Logger)

	return p
}

// RegisterFunction adds a Go func that can be called from config files.
// Parameters and the single return value must be strings, bools, ints or
// float64s, i.e.
//
//	p.RegisterFunction("area_code", func(phone string) string { return phone[:3] })
func (p *Parser) RegisterFunction(name string, f any) error {
	ctyFunc, err := createCtyFunctionFromGoFunc(f)
	if err != nil {
		return fmt.Errorf("unable to register function %s: %w", name, err)
	}

	p.functions[name] = ctyFunc

	return nil
}

// RegisterCtyFunction adds a cty function that can be called from config
// files, registered functions replace default functions with the same name
func (p *Parser) RegisterCtyFunction(name string, f function.Function) {
	p.functions[name] = f
}

// ParseFile loads the entities defined in file. When the file contains
// invalid entries the valid entries are returned along with a LoadError.
func (p *Parser) ParseFile(file string) (*Config, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("unable to read file %s: %w", file, err)
	}

	return p.ParseHCL(src, abs)
}

// ParseDirectory loads every .hcl file in dir in lexical order, it does not
// recurse into sub folders
func (p *Parser) ParseDirectory(dir string) (*Config, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.hcl"))
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	c := NewConfig()
	le := errors.NewLoadError()

	for _, f := range files {
		fc, err := p.ParseFile(f)
		if err != nil {
			perr, ok := err.(*errors.LoadError)
			if !ok {
				return nil, err
			}

			le.ParseErrors = append(le.ParseErrors, perr.ParseErrors...)
			le.ValidationErrors = append(le.ValidationErrors, perr.ValidationErrors...)
		}

		for _, e := range fc.Entries {
			if err := c.AppendEntry(e); err != nil {
				le.AppendParseError(errors.NewParserError(e.File, e.Line, e.Column, errors.ParserErrorLevelError, err.Error()))
			}
		}
	}

	if le.HasErrors() {
		return c, le
	}

	return c, nil
}

// ParseHCL loads the entities defined in src, filename is used in error
// messages and recorded on every entry
func (p *Parser) ParseHCL(src []byte, filename string) (*Config, error) {
	p.options.Logger.Debug("Parsing file", "file", filename)

	c := NewConfig()
	le := errors.NewLoadError()

	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		appendDiags(le, diags, filename)
		return c, le
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unable to read body of file %s", filename)
	}

	for _, a := range sortedAttributes(body.Attributes) {
		le.AppendParseError(errors.NewParserError(
			filename, a.SrcRange.Start.Line, a.SrcRange.Start.Column, errors.ParserErrorLevelError,
			fmt.Sprintf("unexpected attribute '%s', only resource blocks can be defined at the top level of a file", a.Name),
		))
	}

	ctx := p.buildContext(filename)

	for _, b := range body.Blocks {
		e, err := p.parseBlock(ctx, filename, b, le)
		if err != nil {
			le.AppendParseError(err)
			continue
		}

		if e == nil {
			continue
		}

		if err := c.AppendEntry(e); err != nil {
			le.AppendParseError(errors.NewParserErrorFromRange(b.DefRange(), err))
			continue
		}

		p.options.Logger.Debug("Loaded entry", "id", e.ID(), "missing", strings.Join(e.Entity.GetMissing(), ","))
	}

	if le.HasErrors() {
		p.options.Logger.Error("Unable to load file", "file", filename, "errors", len(le.WrappedErrors()))
		return c, le
	}

	return c, nil
}

// parseBlock converts a block into an entry, problems with the values of the
// block are added to le and a nil entry is returned
func (p *Parser) parseBlock(ctx *hcl.EvalContext, filename string, b *hclsyntax.Block, le *errors.LoadError) (*Entry, error) {
	conf, err := p.registry.GetByName(b.Type)
	if err != nil {
		return nil, errors.NewParserError(
			filename, b.TypeRange.Start.Line, b.TypeRange.Start.Column, errors.ParserErrorLevelError,
			fmt.Sprintf("unknown resource type '%s'", b.Type),
		)
	}

	if len(b.Labels) != 1 {
		return nil, errors.NewParserError(
			filename, b.TypeRange.Start.Line, b.TypeRange.Start.Column, errors.ParserErrorLevelError,
			fmt.Sprintf("resource '%s' must have a single name, please specify resources using the syntax '%s \"name\" {}'", b.Type, b.Type),
		)
	}

	if len(b.Body.Blocks) > 0 {
		nb := b.Body.Blocks[0]
		return nil, errors.NewParserError(
			filename, nb.TypeRange.Start.Line, nb.TypeRange.Start.Column, errors.ParserErrorLevelError,
			fmt.Sprintf("unexpected block '%s' in %s.%s, values must be set as attributes", nb.Type, b.Type, b.Labels[0]),
		)
	}

	values := map[string]cty.Value{}
	valid := true

	for _, a := range sortedAttributes(b.Body.Attributes) {
		v, diags := a.Expr.Value(ctx)
		if diags.HasErrors() {
			appendDiags(le, diags, filename)
			valid = false
			continue
		}

		values[a.Name] = v
	}

	if !valid {
		return nil, nil
	}

	opts := []schema.Option{}
	if p.options.IgnoreUnknown {
		opts = append(opts, schema.IgnoreUnknown())
	}

	ent, err := schema.New(conf.GetSchema(), values, opts...)
	if err != nil {
		rng := b.DefRange()
		if ve, ok := err.(*errors.ValidationError); ok {
			if a, ok := b.Body.Attributes[fieldRoot(ve.Field)]; ok {
				rng = a.SrcRange
			}
		}

		le.AppendValidationError(errors.NewParserErrorFromRange(rng, err))

		return nil, nil
	}

	return &Entry{
		Type:   b.Type,
		Name:   b.Labels[0],
		File:   filename,
		Line:   b.TypeRange.Start.Line,
		Column: b.TypeRange.Start.Column,
		Entity: ent,
	}, nil
}

func (p *Parser) buildContext(filename string) *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for k, v := range p.options.Variables {
		vars[k] = cty.StringVal(v)
	}

	if p.options.VariableEnvPrefix != "" {
		for _, kv := range os.Environ() {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || !strings.HasPrefix(k, p.options.VariableEnvPrefix) {
				continue
			}

			vars[strings.TrimPrefix(k, p.options.VariableEnvPrefix)] = cty.StringVal(v)
		}
	}

	funcs := getDefaultFunctions(filename)
	for k, f := range p.functions {
		funcs[k] = f
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(vars),
		},
		Functions: funcs,
	}
}

func appendDiags(le *errors.LoadError, diags hcl.Diagnostics, filename string) {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}

		le.AppendParseError(errors.NewParserErrorFromHCLDiag(d, filename))
	}
}

// sortedAttributes returns attributes in source order
func sortedAttributes(attrs hclsyntax.Attributes) []*hclsyntax.Attribute {
	sorted := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, a := range attrs {
		sorted = append(sorted, a)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SrcRange.Start.Byte < sorted[j].SrcRange.Start.Byte
	})

	return sorted
}

// fieldRoot returns the top level field of a nested path, i.e. addresses
// for addresses[0].city
func fieldRoot(path string) string {
	if i := strings.IndexAny(path, "[."); i >= 0 {
		return path[:i]
	}

	return path
}
