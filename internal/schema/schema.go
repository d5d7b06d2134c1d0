package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// --- Primary Binding File Structures ---

// Include represents an `include` block from a binding file. The labelled
// path is resolved relative to the including file and merged before the
// including file's own bindings.
type Include struct {
	Path string `hcl:"path,label"`
}

// Model represents a `model` block from a binding file. It selects the root
// component of the model via a reference string such as "@Autoencoder". The
// root expression is kept unevaluated so the loader can report its source
// range on resolution errors.
type Model struct {
	Name string         `hcl:"name,label"`
	Root hcl.Expression `hcl:"root"`
}

// Bind represents a `bind` block from a binding file: parameter bindings for
// one registered component. The body is free-form attributes validated later
// against the component's manifest.
type Bind struct {
	Component string   `hcl:"component,label"`
	Body      hcl.Body `hcl:",remain"`
}

// Scope represents a `scope` block grouping bind blocks under a named scope.
// Bindings inside a scope configure an independent instance of each bound
// component.
type Scope struct {
	Name  string  `hcl:"scope_name,label"`
	Binds []*Bind `hcl:"bind,block"`
}

// BindingFile represents the top-level structure of a single binding file.
// Unknown top-level blocks or attributes are decode errors.
type BindingFile struct {
	Includes []*Include `hcl:"include,block"`
	Models   []*Model   `hcl:"model,block"`
	Binds    []*Bind    `hcl:"bind,block"`
	Scopes   []*Scope   `hcl:"scope,block"`
}

// --- Component Manifest Schemas ---

// ParamDefinition defines a single parameter in a component manifest. The
// type expression is kept unevaluated so the registry can translate it into
// a cty type, including the reference-valued `component` keyword.
type ParamDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Default     *cty.Value     `hcl:"default,optional"`
	Optional    bool           `hcl:"optional,optional"`
}

// ComponentDefinition represents the HCL manifest for one registered
// component type.
type ComponentDefinition struct {
	Name        string             `hcl:"name,label"`
	Description string             `hcl:"description,optional"`
	Params      []*ParamDefinition `hcl:"param,block"`
}

// ManifestConfig represents the top-level structure of a component manifest
// file. A package that registers several components lists them all in its
// manifest.
type ManifestConfig struct {
	Components []*ComponentDefinition `hcl:"component,block"`
}
