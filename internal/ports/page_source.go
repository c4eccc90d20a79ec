package ports

import (
	"context"

	"github.com/bnema/portal-credits/internal/domain"
)

// PageTextSource is a live, authenticated page that yields its visible text.
type PageTextSource interface {
	Navigate(ctx context.Context, url string) error
	CurrentPageText(ctx context.Context) (string, error)
	// ElementText returns the text of the first element matching selector.
	ElementText(ctx context.Context, selector string) (string, error)
	Close() error
}

// SessionProvider opens a session positioned on the target's credits page.
type SessionProvider interface {
	Open(ctx context.Context, target domain.PortalTarget) (PageTextSource, error)
	// Bootstrap lets the operator log in once so the profile can be reused.
	Bootstrap(ctx context.Context, target domain.PortalTarget) (domain.Profile, error)
}
