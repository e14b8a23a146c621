package transport

import "github.com/KirkDiggler/roshambo/internal/models"

// Error is a transport failure
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNilEnvelope   Error = "envelope is required"
	ErrNoDestination Error = "envelope has no destination"
	ErrClosed        Error = "transport closed"
	ErrEmptyNodeID   Error = "node id is required"
)

// Validate checks the addressing every transport relies on
func Validate(env *models.Envelope) error {
	if env == nil {
		return ErrNilEnvelope
	}
	if env.To == "" {
		return ErrNoDestination
	}
	return nil
}
