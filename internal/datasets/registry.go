package datasets

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Dataset)
	mu       sync.RWMutex
)

// Register adds a dataset to the registry.
func Register(ds Dataset) {
	mu.Lock()
	defer mu.Unlock()
	registry[ds.Name()] = ds
}

// Get retrieves a dataset by name.
func Get(name string) (Dataset, error) {
	mu.RLock()
	defer mu.RUnlock()

	ds, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset: %s", name)
	}
	return ds, nil
}

// List returns all registered dataset names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered datasets sorted by name.
func All() []Dataset {
	names := List()

	mu.RLock()
	defer mu.RUnlock()

	all := make([]Dataset, 0, len(names))
	for _, name := range names {
		all = append(all, registry[name])
	}
	return all
}
