package dag

import (
	"sort"

	"github.com/synthlab/synthgridgo/internal/bindkey"
)

// Instance is one constructed component instance.
type Instance struct {
	// Ref is the (scope, component) pair this instance was built for.
	Ref bindkey.Ref
	// Params is the decoded params struct the constructor consumed.
	Params any
	// Object is what the constructor returned.
	Object any
}

// Model is the result of a successful build: the root object plus every
// constructed instance in construction order (dependencies first).
type Model struct {
	Name      string
	RootRef   bindkey.Ref
	Root      any
	Instances []*Instance

	byRef map[bindkey.Ref]*Instance
}

// Instance returns the constructed instance for a (scope, component) pair.
func (m *Model) Instance(ref bindkey.Ref) (*Instance, bool) {
	inst, ok := m.byRef[ref]
	return inst, ok
}

// CheckpointCarrier is implemented by component objects that reference
// external checkpoint files which must be reachable at load time.
type CheckpointCarrier interface {
	CheckpointRefs() []string
}

// CollectCheckpoints gathers every checkpoint reference carried by the
// model's instances, deduplicated and sorted.
func CollectCheckpoints(m *Model) []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, inst := range m.Instances {
		carrier, ok := inst.Object.(CheckpointCarrier)
		if !ok {
			continue
		}
		for _, path := range carrier.CheckpointRefs() {
			if path == "" {
				continue
			}
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}
