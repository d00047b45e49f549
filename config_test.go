package personsmodel

import (
	"testing"

	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/jumppad-labs/personsmodel/persons"
	"github.com/jumppad-labs/personsmodel/schema"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testEntry(t *testing.T, name string, values map[string]cty.Value) *Entry {
	e, err := schema.New(persons.PropsSchema, values)
	require.NoError(t, err)

	return &Entry{Type: persons.Name, Name: name, File: "test.hcl", Line: 1, Column: 1, Entity: e}
}

func TestEntryID(t *testing.T) {
	e := testEntry(t, "bob", nil)
	require.Equal(t, "person.bob", e.ID())
}

func TestAppendEntryFailsOnDuplicate(t *testing.T) {
	c := NewConfig()

	require.NoError(t, c.AppendEntry(testEntry(t, "bob", nil)))
	err := c.AppendEntry(testEntry(t, "bob", nil))
	require.ErrorContains(t, err, "person.bob is already defined at test.hcl:1")
	require.Len(t, c.Entries, 1)
}

func TestFindEntry(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.AppendEntry(testEntry(t, "bob", nil)))

	e, err := c.FindEntry("person.bob")
	require.NoError(t, err)
	require.Equal(t, "bob", e.Name)

	_, err = c.FindEntry("person.alice")
	require.IsType(t, &errors.NotFoundError{}, err)
}

func TestFindEntriesByTypeAndEntities(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.AppendEntry(testEntry(t, "bob", nil)))
	require.NoError(t, c.AppendEntry(testEntry(t, "alice", nil)))

	require.Len(t, c.FindEntriesByType(persons.Name), 2)
	require.Empty(t, c.FindEntriesByType("organization"))
	require.Len(t, c.Entities(persons.Name), 2)
}

func TestIncompleteReturnsEntriesWithMissingFields(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.AppendEntry(testEntry(t, "bob", nil)))

	require.Len(t, c.Incomplete(), 1)
}

func TestMergeReportsDuplicates(t *testing.T) {
	a := NewConfig()
	require.NoError(t, a.AppendEntry(testEntry(t, "bob", nil)))

	b := NewConfig()
	require.NoError(t, b.AppendEntry(testEntry(t, "bob", nil)))
	require.NoError(t, b.AppendEntry(testEntry(t, "alice", nil)))

	err := a.Merge(b)
	require.ErrorContains(t, err, "unable to merge config")
	require.Len(t, a.Entries, 2)
}
