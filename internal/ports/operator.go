package ports

import (
	"context"
	"errors"
)

var ErrOperatorDeclined = errors.New("operator skipped the portal")

type Prompt struct {
	Title       string
	Description string
}

// Operator is the human attending the visible browser session.
type Operator interface {
	AwaitConfirmation(ctx context.Context, prompt Prompt) error
}
