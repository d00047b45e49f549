package resources

import (
	"github.com/jumppad-labs/personsmodel/errors"
	"github.com/jumppad-labs/personsmodel/logger"
)

// Registry holds the configuration for every resource known to the
// application. A registry is created at start up, populated with Register,
// checked with Verify and then passed to the code that needs it.
type Registry struct {
	confs  map[string]Conf
	names  map[string]string
	order  []string
	logger logger.Logger
}

// NewRegistry creates an empty registry, l can be nil
func NewRegistry(l logger.Logger) *Registry {
	return &Registry{
		confs:  map[string]Conf{},
		names:  map[string]string{},
		logger: logger.OrNop(l),
	}
}

// Register adds resource configurations to the registry, it fails with a
// ConfigError when a resource or block name is already registered or is
// used twice in confs, in which case none of confs are added
func (r *Registry) Register(confs ...Conf) error {
	resourceNames := map[string]bool{}
	names := map[string]bool{}

	for _, c := range confs {
		if _, ok := r.confs[c.GetResourceName()]; ok || resourceNames[c.GetResourceName()] {
			return errors.NewConfigError(c.GetName(), "resource '"+c.GetResourceName()+"' is already registered")
		}

		if _, ok := r.names[c.GetName()]; ok || names[c.GetName()] {
			return errors.NewConfigError(c.GetName(), "resource name '"+c.GetName()+"' is already registered")
		}

		resourceNames[c.GetResourceName()] = true
		names[c.GetName()] = true
	}

	for _, c := range confs {
		r.confs[c.GetResourceName()] = c
		r.names[c.GetName()] = c.GetResourceName()
		r.order = append(r.order, c.GetResourceName())

		r.logger.Debug("Registered resource", "name", c.GetName(), "resource", c.GetResourceName(), "sort_default", c.GetSortDefault())
	}

	return nil
}

// Get returns the configuration for the given resource name, i.e. "persons"
func (r *Registry) Get(resourceName string) (Conf, error) {
	c, ok := r.confs[resourceName]
	if !ok {
		return nil, errors.NewNotFoundError("resource", resourceName)
	}

	return c, nil
}

// GetByName returns the configuration for the given singular name, i.e.
// "person"
func (r *Registry) GetByName(name string) (Conf, error) {
	rn, ok := r.names[name]
	if !ok {
		return nil, errors.NewNotFoundError("resource", name)
	}

	return r.confs[rn], nil
}

// ResourceNames returns the registered resource names in registration order
func (r *Registry) ResourceNames() []string {
	n := make([]string, len(r.order))
	copy(n, r.order)

	return n
}

// Verify checks every registered configuration, all problems are returned
// in a single ConfigError
func (r *Registry) Verify() error {
	ce := errors.NewConfigError("")

	if len(r.order) == 0 {
		ce.AppendProblem("no resources registered")
	}

	for _, rn := range r.order {
		if err := r.confs[rn].validate(); err != nil {
			for _, p := range err.Problems {
				ce.AppendProblem("resource %s: %s", err.Resource, p)
			}
		}
	}

	if ce.HasProblems() {
		r.logger.Error("Resource configuration is invalid", "error", ce)
		return ce
	}

	r.logger.Debug("Verified resources", "count", len(r.order))

	return nil
}

// Lookup returns the sort settings for a resource registered with model
// type T
func Lookup[T any](r *Registry, resourceName string) (*Settings[T], error) {
	rc, err := LookupConf[T](r, resourceName)
	if err != nil {
		return nil, err
	}

	return rc.Settings(), nil
}

// LookupConf returns the typed configuration for a resource registered with
// model type T
func LookupConf[T any](r *Registry, resourceName string) (*ResourceConf[T], error) {
	c, err := r.Get(resourceName)
	if err != nil {
		return nil, err
	}

	rc, ok := c.(*ResourceConf[T])
	if !ok {
		return nil, errors.NewNotFoundError("resource", resourceName)
	}

	return rc, nil
}
