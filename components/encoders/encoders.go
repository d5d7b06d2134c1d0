// Package encoders provides the encoder components that map audio
// features to latent codes.
package encoders

// Encoder is implemented by every encoder component.
type Encoder interface {
	EncoderName() string
}
