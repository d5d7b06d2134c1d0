package bindkey

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	scopePattern     = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	componentPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	paramPattern     = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

	keyPattern = regexp.MustCompile(
		`^(?:(?P<scope>[a-z][a-z0-9_]*)/)?(?P<component>[A-Za-z][A-Za-z0-9_]*)\.(?P<param>[a-z][a-z0-9_]*)$`)
	refPattern = regexp.MustCompile(
		`^@(?:(?P<scope>[a-z][a-z0-9_]*)/)?(?P<component>[A-Za-z][A-Za-z0-9_]*)$`)
)

// ParseKey converts a qualified binding key string into its structured form.
func ParseKey(raw string) (Key, error) {
	m := keyPattern.FindStringSubmatch(raw)
	if m == nil {
		return Key{}, fmt.Errorf("invalid binding key %q, expected [scope/]Component.param", raw)
	}
	return Key{
		Scope:     m[keyPattern.SubexpIndex("scope")],
		Component: m[keyPattern.SubexpIndex("component")],
		Param:     m[keyPattern.SubexpIndex("param")],
	}, nil
}

// ParseRef converts a component reference string, as written in binding
// files with its leading '@', into its structured form.
func ParseRef(raw string) (Ref, error) {
	m := refPattern.FindStringSubmatch(raw)
	if m == nil {
		return Ref{}, fmt.Errorf("invalid component reference %q, expected @[scope/]Component", raw)
	}
	return Ref{
		Scope:     m[refPattern.SubexpIndex("scope")],
		Component: m[refPattern.SubexpIndex("component")],
	}, nil
}

// IsRef reports whether a string value carries the '@' reference marker.
func IsRef(s string) bool {
	return strings.HasPrefix(s, "@")
}

// ValidateScope checks a scope block label. Scope names are lowercase
// snake_case so they read distinctly from component names.
func ValidateScope(name string) error {
	if !scopePattern.MatchString(name) {
		return fmt.Errorf("invalid scope name %q, expected lowercase snake_case", name)
	}
	return nil
}

// ValidateComponent checks a bind block label against the component naming
// rules shared with the registry.
func ValidateComponent(name string) error {
	if !componentPattern.MatchString(name) {
		return fmt.Errorf("invalid component name %q", name)
	}
	return nil
}

// ValidateParam checks a parameter attribute name.
func ValidateParam(name string) error {
	if !paramPattern.MatchString(name) {
		return fmt.Errorf("invalid parameter name %q, expected lowercase snake_case", name)
	}
	return nil
}
