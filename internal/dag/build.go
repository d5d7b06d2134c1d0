package dag

import (
	"context"
	"fmt"
	"strings"

	"github.com/synthlab/synthgridgo/internal/bindkey"
	"github.com/synthlab/synthgridgo/internal/config"
	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/registry"
)

// builder carries one build in progress. It implements registry.Builder so
// component constructors can resolve their own reference params through it.
type builder struct {
	cfg  *config.Model
	conv config.Converter
	reg  *registry.Registry

	built map[bindkey.Ref]*Instance
	order []*Instance

	// stack is the active construction path, used for cycle reporting.
	stack []bindkey.Ref
}

// Build constructs the component graph starting from the model's root
// reference and returns the materialized model.
func Build(ctx context.Context, cfg *config.Model, conv config.Converter, reg *registry.Registry) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build started.", "root", cfg.Root.Marker())

	b := &builder{
		cfg:   cfg,
		conv:  conv,
		reg:   reg,
		built: make(map[bindkey.Ref]*Instance),
	}

	rootInst, err := b.instance(ctx, cfg.Root)
	if err != nil {
		return nil, err
	}

	logger.Debug("Build complete.", "instances", len(b.order))
	return &Model{
		Name:      cfg.Name,
		RootRef:   cfg.Root,
		Root:      rootInst.Object,
		Instances: b.order,
		byRef:     b.built,
	}, nil
}

// Component implements registry.Builder.
func (b *builder) Component(ctx context.Context, refStr string) (any, error) {
	ref, err := bindkey.ParseRef(refStr)
	if err != nil {
		return nil, err
	}
	inst, err := b.instance(ctx, ref)
	if err != nil {
		return nil, err
	}
	return inst.Object, nil
}

// instance returns the constructed instance for a ref, building it and its
// dependencies on first use.
func (b *builder) instance(ctx context.Context, ref bindkey.Ref) (*Instance, error) {
	if inst, ok := b.built[ref]; ok {
		return inst, nil
	}
	for _, active := range b.stack {
		if active == ref {
			chain := make([]string, 0, len(b.stack)+1)
			for _, r := range b.stack {
				chain = append(chain, r.Marker())
			}
			chain = append(chain, ref.Marker())
			return nil, fmt.Errorf("component reference cycle detected: %s", strings.Join(chain, " -> "))
		}
	}
	b.stack = append(b.stack, ref)
	defer func() { b.stack = b.stack[:len(b.stack)-1] }()

	def, ok := b.reg.Definition(ref.Component)
	if !ok {
		return nil, fmt.Errorf("%s references unregistered component '%s'", ref.Marker(), ref.Component)
	}
	handler, ok := b.reg.Handler(ref.Component)
	if !ok {
		return nil, fmt.Errorf("component '%s' has no registered constructor", ref.Component)
	}

	var params any
	if handler.NewParams != nil {
		params = handler.NewParams()
		bound := b.cfg.Bindings.ForInstance(ref)
		if err := b.conv.DecodeParams(ctx, params, bound, def, ref); err != nil {
			return nil, err
		}
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Constructing component instance.", "instance", ref.String())

	obj, err := handler.Construct(ctx, b, params)
	if err != nil {
		return nil, fmt.Errorf("constructing %s: %w", ref.String(), err)
	}

	inst := &Instance{Ref: ref, Params: params, Object: obj}
	b.built[ref] = inst
	b.order = append(b.order, inst)
	return inst, nil
}
