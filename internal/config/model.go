package config

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/synthlab/synthgridgo/internal/bindkey"
)

// Model is the unified, format-agnostic result of loading and merging a set
// of binding files.
type Model struct {
	// Name and Root come from the last `model` block surviving the merge.
	Name      string
	Root      bindkey.Ref
	RootRange hcl.Range

	// Bindings is the flat merged store of every parameter binding.
	Bindings *BindingSet

	// Files lists every binding file that contributed, in merge order.
	Files []string
}

// Binding is one merged parameter binding: the evaluated value and the
// source range that last wrote it.
type Binding struct {
	Key   bindkey.Key
	Value cty.Value
	Range hcl.Range
}

// BindingSet is the flat store of merged bindings, keyed by qualified name.
// Writing the same key twice keeps the later value.
type BindingSet struct {
	byKey map[bindkey.Key]*Binding
}

// NewBindingSet returns an empty binding store.
func NewBindingSet() *BindingSet {
	return &BindingSet{byKey: make(map[bindkey.Key]*Binding)}
}

// Set records a binding, replacing any earlier value for the same key.
func (s *BindingSet) Set(key bindkey.Key, value cty.Value, rng hcl.Range) {
	s.byKey[key] = &Binding{Key: key, Value: value, Range: rng}
}

// Get returns the merged binding for a key, if any.
func (s *BindingSet) Get(key bindkey.Key) (*Binding, bool) {
	b, ok := s.byKey[key]
	return b, ok
}

// Len returns the number of distinct bound keys.
func (s *BindingSet) Len() int {
	return len(s.byKey)
}

// Keys returns every bound key in canonical order: default scope first,
// then scopes alphabetically, components and params alphabetically within.
func (s *BindingSet) Keys() []bindkey.Key {
	keys := make([]bindkey.Key, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Scope != b.Scope {
			return a.Scope < b.Scope
		}
		if a.Component != b.Component {
			return a.Component < b.Component
		}
		return a.Param < b.Param
	})
	return keys
}

// Instances returns every distinct (scope, component) pair that has at
// least one binding, in the same canonical order as Keys.
func (s *BindingSet) Instances() []bindkey.Ref {
	seen := make(map[bindkey.Ref]struct{})
	var refs []bindkey.Ref
	for _, k := range s.Keys() {
		ref := k.Instance()
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	return refs
}

// ForInstance returns the merged bindings of one component instance, keyed
// by bare parameter name.
func (s *BindingSet) ForInstance(ref bindkey.Ref) map[string]*Binding {
	out := make(map[string]*Binding)
	for key, b := range s.byKey {
		if key.Scope == ref.Scope && key.Component == ref.Component {
			out[key.Param] = b
		}
	}
	return out
}

// --- Component Manifest Models ---

// ComponentDefinition is the format-agnostic representation of a component's
// manifest.
type ComponentDefinition struct {
	Name        string
	Description string
	Params      map[string]*ParamDefinition
}

// ParamDefinition defines a single parameter of a component.
type ParamDefinition struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	Optional    bool

	// Ref marks a param declared with the `component` type keyword: its
	// value is a "@[scope/]Component" reference resolved during the build.
	// RefList marks `list(component)`.
	Ref     bool
	RefList bool
}

// Required reports whether a binding must be present for this param.
func (p *ParamDefinition) Required() bool {
	return p.Default == nil && !p.Optional
}
