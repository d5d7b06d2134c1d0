/*
Package bindkey provides the structured representation of qualified binding
keys and component references used throughout the engine.

A binding key names a single parameter of a registered component, optionally
inside a named scope:

	Component.param
	scope/Component.param

A component reference names a component instance as a value, again optionally
scoped, and is written with a leading '@' in binding files:

	@Component
	@scope/Component

Scopes are the only instancing mechanism in the configuration format: the same
component bound under two scopes yields two independent parameter sets and,
when referenced, two independent instances.
*/
package bindkey
