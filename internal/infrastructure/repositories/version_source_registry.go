package repositories

import (
	"fmt"

	domainRepos "github.com/rios0rios0/setversion/internal/domain/repositories"
)

// VersionSourceRegistry keeps the registered version sources in priority order.
type VersionSourceRegistry struct {
	sources []domainRepos.VersionSourceRepository
	byName  map[string]domainRepos.VersionSourceRepository
}

// NewVersionSourceRegistry creates an empty version source registry.
func NewVersionSourceRegistry() *VersionSourceRegistry {
	return &VersionSourceRegistry{
		byName: make(map[string]domainRepos.VersionSourceRepository),
	}
}

// Register appends a source after the ones already registered.
// Registering a name twice replaces the earlier source in place.
func (r *VersionSourceRegistry) Register(source domainRepos.VersionSourceRepository) {
	name := source.Name()
	if _, exists := r.byName[name]; exists {
		for i, s := range r.sources {
			if s.Name() == name {
				r.sources[i] = source
			}
		}
	} else {
		r.sources = append(r.sources, source)
	}
	r.byName[name] = source
}

// Get returns the source with the given name.
func (r *VersionSourceRegistry) Get(name string) (domainRepos.VersionSourceRepository, error) {
	source, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown version source: %q", name)
	}
	return source, nil
}

// All returns every registered source, highest priority first.
func (r *VersionSourceRegistry) All() []domainRepos.VersionSourceRepository {
	result := make([]domainRepos.VersionSourceRepository, len(r.sources))
	copy(result, r.sources)
	return result
}

// Names returns the registered source names in priority order.
func (r *VersionSourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for _, s := range r.sources {
		names = append(names, s.Name())
	}
	return names
}
