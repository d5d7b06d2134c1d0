// Package losses provides the training loss components.
package losses

// Loss is implemented by every loss component.
type Loss interface {
	LossName() string
}
