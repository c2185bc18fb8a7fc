package glyph

import (
	"math/rand/v2"
	"sort"
	"sync/atomic"
)

// Registry resolves mode names to glyph sets.
//
// When no usable mode is requested the registry picks a default once and
// keeps it for its lifetime. The first caller to resolve the default wins;
// concurrent callers that lose the race adopt the stored value.
type Registry struct {
	modes map[string]Mode
	names []string
	pick  func(n int) int
	def   atomic.Pointer[Mode]
}

// Option configures a Registry.
type Option func(*Registry)

// WithPicker sets the function used to choose the default mode index.
// It receives the number of modes and must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(r *Registry) {
		r.pick = pick
	}
}

// WithModes replaces the built-in modes. Modes with an empty name are ignored.
func WithModes(modes ...Mode) Option {
	return func(r *Registry) {
		r.modes = make(map[string]Mode, len(modes))
		for _, m := range modes {
			if m.Name != "" {
				r.modes[m.Name] = m
			}
		}
	}
}

// NewRegistry creates a registry holding the built-in modes.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{pick: rand.IntN}
	WithModes(builtin()...)(r)
	for _, opt := range opts {
		opt(r)
	}
	if len(r.modes) == 0 {
		WithModes(builtin()...)(r)
	}
	r.names = make([]string, 0, len(r.modes))
	for name := range r.modes {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

var std = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return std
}

// Names returns the known mode names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Lookup returns the named mode.
func (r *Registry) Lookup(name string) (Mode, bool) {
	m, ok := r.modes[name]
	return m, ok
}

// Resolve returns the requested mode, or the default mode when the name is
// empty or unknown. It never fails.
func (r *Registry) Resolve(requested string) Mode {
	if m, ok := r.modes[requested]; ok {
		return m
	}
	return r.DefaultMode()
}

// DefaultMode returns the memoised default, choosing it on first use.
func (r *Registry) DefaultMode() Mode {
	if m := r.def.Load(); m != nil {
		return *m
	}
	idx := r.pick(len(r.names))
	if idx < 0 || idx >= len(r.names) {
		idx = 0
	}
	chosen := r.modes[r.names[idx]]
	if !r.def.CompareAndSwap(nil, &chosen) {
		return *r.def.Load()
	}
	return chosen
}
