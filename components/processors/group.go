package processors

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// groupParams mirrors the ProcessorGroup manifest.
type groupParams struct {
	Name string    `sggo:"name"`
	Dag  []dagNode `sggo:"dag"`
}

// dagNode is one entry of the dag binding: a processor reference and the
// input keys routed into it.
type dagNode struct {
	Processor string   `cty:"processor"`
	Inputs    []string `cty:"inputs"`
}

// constructGroup resolves every dag node's processor and returns the
// ordered Group. Routing against the seeded inputs is the consumer's
// call, since only it knows which keys feed the group.
func constructGroup(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*groupParams)

	if len(p.Dag) == 0 {
		return nil, fmt.Errorf("dag must have at least one node")
	}

	group := &Group{Name: p.Name}
	seen := make(map[string]int, len(p.Dag))

	for i, entry := range p.Dag {
		obj, err := b.Component(ctx, entry.Processor)
		if err != nil {
			return nil, fmt.Errorf("dag node %d: %w", i, err)
		}
		proc, ok := obj.(Processor)
		if !ok {
			return nil, fmt.Errorf("dag node %d: %s is not a processor (got %T)", i, entry.Processor, obj)
		}

		name := proc.ProcessorName()
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("dag nodes %d and %d share the processor name %q", prev, i, name)
		}
		seen[name] = i

		group.Nodes = append(group.Nodes, &Node{
			Name:      name,
			Processor: proc,
			Inputs:    entry.Inputs,
		})
	}

	return group, nil
}
