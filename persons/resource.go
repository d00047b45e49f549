package persons

import (
	"github.com/jumppad-labs/personsmodel/resources"
)

const (
	SortDisplayNameAsc  = "displayName-asc"
	SortDisplayNameDesc = "displayName-desc"
)

func displayName(p *Person) string { return p.DisplayName }

// SortOptions are the orderings persons can be listed in
func SortOptions() []resources.SortOption[*Person] {
	return []resources.SortOption[*Person]{
		{Label: "Display name (asc)", Value: SortDisplayNameAsc, Func: resources.Ascending(displayName)},
		{Label: "Display name (desc)", Value: SortDisplayNameDesc, Func: resources.Descending(displayName)},
	}
}

// NewResourceConf returns the resource configuration for persons
func NewResourceConf() (*resources.ResourceConf[*Person], error) {
	return resources.NewResourceConf(Name, ResourceName, PropsSchema, SortDisplayNameAsc, SortOptions()...)
}

// Register adds the person resource to the registry
func Register(r *resources.Registry) error {
	rc, err := NewResourceConf()
	if err != nil {
		return err
	}

	return r.Register(rc)
}
