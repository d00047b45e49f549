package personsmodel

import (
	"fmt"
	"strings"

	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/jumppad-labs/personsmodel/schema"
)

// Entry is an entity that has been loaded from a config file
type Entry struct {
	// Type is the block type, i.e. "person"
	Type string
	// Name is the block label
	Name string

	// File is the absolute path of the file where the entry is defined
	File string
	// Line and Column are the start of the block in File
	Line   int
	Column int

	Entity *schema.Entity
}

// ID returns the address of the entry, i.e. person.bob
func (e *Entry) ID() string {
	return e.Type + "." + e.Name
}

// Config holds the entries loaded by the parser in the order they were read
type Config struct {
	Entries []*Entry
}

func NewConfig() *Config {
	return &Config{Entries: []*Entry{}}
}

// AppendEntry adds an entry, it fails when an entry with the same id exists
func (c *Config) AppendEntry(e *Entry) error {
	if existing, err := c.FindEntry(e.ID()); err == nil {
		return fmt.Errorf("%s is already defined at %s:%d", e.ID(), existing.File, existing.Line)
	}

	c.Entries = append(c.Entries, e)

	return nil
}

// FindEntry returns the entry with the given id, i.e. person.bob
func (c *Config) FindEntry(id string) (*Entry, error) {
	for _, e := range c.Entries {
		if e.ID() == id {
			return e, nil
		}
	}

	return nil, errors.NewNotFoundError("entry", id)
}

// FindEntriesByType returns every entry with the given block type
func (c *Config) FindEntriesByType(t string) []*Entry {
	entries := []*Entry{}
	for _, e := range c.Entries {
		if e.Type == t {
			entries = append(entries, e)
		}
	}

	return entries
}

// Entities returns the entities of every entry with the given block type
func (c *Config) Entities(t string) []*schema.Entity {
	entities := []*schema.Entity{}
	for _, e := range c.FindEntriesByType(t) {
		entities = append(entities, e.Entity)
	}

	return entities
}

// Incomplete returns the entries that have required fields unset
func (c *Config) Incomplete() []*Entry {
	entries := []*Entry{}
	for _, e := range c.Entries {
		if !e.Entity.IsComplete() {
			entries = append(entries, e)
		}
	}

	return entries
}

// Merge appends the entries of other, returning an error listing every
// duplicate id
func (c *Config) Merge(other *Config) error {
	dupes := []string{}
	for _, e := range other.Entries {
		if err := c.AppendEntry(e); err != nil {
			dupes = append(dupes, err.Error())
		}
	}

	if len(dupes) > 0 {
		return fmt.Errorf("unable to merge config: %s", strings.Join(dupes, ", "))
	}

	return nil
}
