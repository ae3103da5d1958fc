// Package transform provides the registry of named unary text
// transformations invoked by call expressions.
package transform

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Func is a unary text transformation.
type Func func(string) string

// Registry maps transformation names to functions. Registration happens at
// startup; lookups during evaluation are read-only, so one registry is
// safely shared by any number of concurrent query evaluations.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Default returns a registry preloaded with the builtin transformations.
func Default() *Registry {
	r := NewRegistry()
	r.Register("lower", strings.ToLower)
	r.Register("upper", strings.ToUpper)
	r.Register("trim", strings.TrimSpace)
	r.Register("length", func(s string) string {
		return strconv.Itoa(len(s))
	})
	r.Register("reverse", func(s string) string {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	})
	return r
}

// Register adds a transformation under the given name, replacing any
// previous registration.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Lookup resolves a name exactly as written in the call expression.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
