// Package processors provides the signal-routing components of the
// synthesizer: the ProcessorGroup that wires processors into an ordered
// DAG, and the small glue processors Add, Mix and Split.
package processors

import (
	"fmt"
	"strings"
)

// Processor is implemented by every component that can appear as a node
// in a processor group. The name doubles as the routing prefix for the
// node's outputs.
type Processor interface {
	ProcessorName() string
}

// Node is one entry of a processor group's dag: a constructed processor
// and the input keys routed into it.
type Node struct {
	Name      string
	Processor Processor
	Inputs    []string
}

// Group is a validated, ordered processor DAG. The group's output is the
// signal of its last node.
type Group struct {
	Name  string
	Nodes []*Node
}

// OutputKey returns the routing key carrying the group's final signal.
func (g *Group) OutputKey() string {
	if len(g.Nodes) == 0 {
		return ""
	}
	return g.Nodes[len(g.Nodes)-1].Name + "/signal"
}

// ValidateRouting checks that every node input resolves to a seeded
// group input or to the output of an earlier node. An earlier node named
// n publishes "n/signal" and keys under "n/controls/".
func (g *Group) ValidateRouting(seeded []string) error {
	available := make(map[string]struct{}, len(seeded))
	for _, key := range seeded {
		available[key] = struct{}{}
	}
	earlier := make(map[string]struct{}, len(g.Nodes))

	for _, node := range g.Nodes {
		for _, input := range node.Inputs {
			if err := g.checkInput(input, available, earlier); err != nil {
				return fmt.Errorf("node %q: %w", node.Name, err)
			}
		}
		earlier[node.Name] = struct{}{}
	}
	return nil
}

func (g *Group) checkInput(input string, available, earlier map[string]struct{}) error {
	if _, ok := available[input]; ok {
		return nil
	}

	prefix, rest, found := strings.Cut(input, "/")
	if found {
		if _, ok := earlier[prefix]; ok {
			if rest == "signal" || strings.HasPrefix(rest, "controls/") {
				return nil
			}
			return fmt.Errorf("input %q: node %q publishes only its signal and controls", input, prefix)
		}
	}
	return fmt.Errorf("input %q does not match a seeded input or an earlier node output", input)
}
