package bindkey

// Key identifies a single bound parameter of a component. An empty Scope
// means the binding lives in the default scope.
type Key struct {
	Scope     string
	Component string
	Param     string
}

// Ref identifies a component instance. An empty Scope means the default
// scope. Two refs with different scopes name different instances even when
// the component is the same.
type Ref struct {
	Scope     string
	Component string
}

// String renders the key in its canonical text form,
// "scope/Component.param" or "Component.param" for the default scope.
func (k Key) String() string {
	if k.Scope == "" {
		return k.Component + "." + k.Param
	}
	return k.Scope + "/" + k.Component + "." + k.Param
}

// Instance returns the component instance this key binds a parameter of.
func (k Key) Instance() Ref {
	return Ref{Scope: k.Scope, Component: k.Component}
}

// String renders the ref in its canonical text form, "scope/Component" or
// "Component" for the default scope. The leading '@' used in binding files
// is not part of the canonical form.
func (r Ref) String() string {
	if r.Scope == "" {
		return r.Component
	}
	return r.Scope + "/" + r.Component
}

// Marker renders the ref as it appears in binding files, with the '@' prefix.
func (r Ref) Marker() string {
	return "@" + r.String()
}
