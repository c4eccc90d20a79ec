package extract

import (
	"context"
	"strings"
	"unicode"

	"github.com/bnema/portal-credits/internal/domain"
	"github.com/bnema/portal-credits/internal/ports"
)

// Extract returns the credits found in text using the portal's patterns in
// priority order; the first pattern that matches wins.
func Extract(portal domain.Portal, text string) (int, error) {
	for _, p := range patternsFor(portal).patterns {
		if m := p.find(text); m.found {
			return m.value, nil
		}
	}

	return 0, &domain.ExtractionError{Portal: portal, Hint: Hint(portal)}
}

// FromSource reads the target's locator fragment first when configured and
// falls back to the whole page text when the fragment is unavailable or
// carries no digits.
func FromSource(ctx context.Context, src ports.PageTextSource, target domain.PortalTarget) (int, error) {
	if locator := strings.TrimSpace(target.Locator); locator != "" {
		fragment, err := src.ElementText(ctx, locator)
		if err == nil {
			if value, ok := parseCredits(digitsOnly(fragment)); ok {
				return value, nil
			}
		}
	}

	text, err := src.CurrentPageText(ctx)
	if err != nil {
		return 0, &domain.SessionUnavailableError{Portal: target.Portal, Err: err}
	}

	return Extract(target.Portal, text)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
