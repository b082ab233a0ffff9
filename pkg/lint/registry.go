package lint

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Registry errors.
var (
	// ErrDuplicateCode indicates a rule or collection code registered twice.
	ErrDuplicateCode = errors.New("duplicate code")

	// ErrUnknownCode indicates a code that is not registered.
	ErrUnknownCode = errors.New("unknown rule or collection")
)

// entry is the variant stored per code: exactly one field is set.
type entry struct {
	rule       Rule
	collection *Collection
}

// Registry is a catalog of lint rules and collections keyed by code.
//
// Codes are unique across both kinds. Registration validates eagerly: a
// collection may only reference codes that are already present, which
// forces a members-before-collections order and catches typos at startup
// instead of mid-run.
//
// A Registry is safe for concurrent use once registration is done.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Register adds a rule to the registry.
// It fails with ErrDuplicateCode if the code is already taken.
func (r *Registry) Register(rule Rule) error {
	code := rule.Code()
	if code == "" {
		return errors.New("register rule: empty code")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[code]; ok {
		return fmt.Errorf("register rule %q: %w", code, ErrDuplicateCode)
	}
	r.entries[code] = entry{rule: rule}
	return nil
}

// RegisterCollection adds a collection to the registry.
// It fails with ErrDuplicateCode if the code is already taken, and with
// ErrUnknownCode if any member is not registered yet.
func (r *Registry) RegisterCollection(c Collection) error {
	if c.Code == "" {
		return errors.New("register collection: empty code")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[c.Code]; ok {
		return fmt.Errorf("register collection %q: %w", c.Code, ErrDuplicateCode)
	}
	for _, member := range c.Members {
		if _, ok := r.entries[member]; !ok {
			return fmt.Errorf("register collection %q: member %q: %w", c.Code, member, ErrUnknownCode)
		}
	}
	r.entries[c.Code] = entry{collection: &c}
	return nil
}

// Rule returns the rule registered under code.
func (r *Registry) Rule(code string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[code]
	if !ok || e.rule == nil {
		return nil, false
	}
	return e.rule, true
}

// Collection returns the collection registered under code.
func (r *Registry) Collection(code string) (Collection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[code]
	if !ok || e.collection == nil {
		return Collection{}, false
	}
	return *e.collection, true
}

// Has reports whether code names a registered rule or collection.
func (r *Registry) Has(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[code]
	return ok
}

// Codes returns every registered code, sorted.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.entries))
	for code := range r.entries {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Rules expands the requested codes into the concrete rules they reach.
//
// Each collection is walked depth first and every code is visited at most
// once, so a rule shared by several collections runs once and a cyclic
// reference cannot recurse forever. The result keeps first-encounter
// order; callers may rely on it for deterministic rule ordering. An
// unregistered code fails with ErrUnknownCode.
func (r *Registry) Rules(codes []string) ([]Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rules []Rule
	visited := make(map[string]bool)

	var walk func(code string) error
	walk = func(code string) error {
		if visited[code] {
			return nil
		}
		visited[code] = true

		e, ok := r.entries[code]
		if !ok {
			return fmt.Errorf("resolve %q: %w", code, ErrUnknownCode)
		}
		if e.rule != nil {
			rules = append(rules, e.rule)
			return nil
		}
		for _, member := range e.collection.Members {
			if err := walk(member); err != nil {
				return err
			}
		}
		return nil
	}

	for _, code := range codes {
		if err := walk(code); err != nil {
			return nil, err
		}
	}
	return rules, nil
}
