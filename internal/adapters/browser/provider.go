package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bnema/portal-credits/internal/domain"
	"github.com/bnema/portal-credits/internal/logging"
	"github.com/bnema/portal-credits/internal/ports"
)

type Config struct {
	// ExecPath overrides browser discovery when set.
	ExecPath string
	IdleWait time.Duration
	// ProfileDir returns the persistent profile directory of a portal.
	ProfileDir func(portal domain.Portal) string
}

type launchFunc func(ctx context.Context, userDataDir string) (tab, error)

// Provider opens visible browser sessions that the operator authenticates.
type Provider struct {
	cfg      Config
	operator ports.Operator
	logger   *slog.Logger
	launch   launchFunc
}

func NewProvider(cfg Config, operator ports.Operator, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = logging.Discard()
	}

	p := &Provider{cfg: cfg, operator: operator, logger: logger}
	p.launch = func(ctx context.Context, userDataDir string) (tab, error) {
		return launchChrome(ctx, cfg.ExecPath, userDataDir, cfg.IdleWait, logger)
	}
	return p
}

func (p *Provider) Open(ctx context.Context, target domain.PortalTarget) (ports.PageTextSource, error) {
	portal := target.Portal
	if target.URL == "" {
		return nil, unavailable(portal, errors.New("credits page url is not configured"))
	}

	userDataDir, err := p.userDataDir(portal, target.RequireProfile)
	if err != nil {
		return nil, unavailable(portal, err)
	}

	logger := p.logger.With("portal", portal.Label())
	t, err := p.launch(ctx, userDataDir)
	if err != nil {
		return nil, unavailable(portal, err)
	}

	s := &session{tab: t}
	if err := p.prepare(ctx, s, target); err != nil {
		if closeErr := s.Close(); closeErr != nil {
			logger.Debug("close session failed", "error", closeErr)
		}
		return nil, unavailable(portal, err)
	}

	logger.Debug("session ready", "url", target.URL, "profile", userDataDir)
	return s, nil
}

func (p *Provider) prepare(ctx context.Context, s *session, target domain.PortalTarget) error {
	if err := s.Navigate(ctx, target.URL); err != nil {
		return err
	}

	prompt := ports.Prompt{
		Title:       fmt.Sprintf("%s: is the credits page showing?", target.Portal.Label()),
		Description: target.Instructions,
	}
	if err := p.operator.AwaitConfirmation(ctx, prompt); err != nil {
		return err
	}

	// The operator may have navigated or logged in meanwhile.
	if target.ReloadAfterConfirm {
		return s.tab.reload(ctx)
	}
	return s.tab.settle(ctx)
}

// Bootstrap opens the portal's login page on its persistent profile and
// waits for the operator to finish logging in.
func (p *Provider) Bootstrap(ctx context.Context, target domain.PortalTarget) (domain.Profile, error) {
	portal := target.Portal
	dir := p.profileDir(portal)
	if dir == "" {
		return domain.Profile{}, errors.New("profiles directory is not configured")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return domain.Profile{}, fmt.Errorf("create profile directory: %w", err)
	}

	loginURL := target.LoginURL
	if loginURL == "" {
		loginURL = target.URL
	}
	if loginURL == "" {
		return domain.Profile{}, errors.New("login page url is not configured")
	}

	t, err := p.launch(ctx, dir)
	if err != nil {
		return domain.Profile{}, err
	}
	defer func() {
		if closeErr := t.close(); closeErr != nil {
			p.logger.Debug("close login browser failed", "portal", portal.Label(), "error", closeErr)
		}
	}()

	if err := t.navigate(ctx, loginURL); err != nil {
		return domain.Profile{}, err
	}

	prompt := ports.Prompt{
		Title:       fmt.Sprintf("Log in to %s in the browser window", portal.Label()),
		Description: "The session is kept in " + dir + ".",
	}
	if err := p.operator.AwaitConfirmation(ctx, prompt); err != nil {
		return domain.Profile{}, err
	}

	return domain.Profile{Portal: portal, Dir: dir}, nil
}

func (p *Provider) profileDir(portal domain.Portal) string {
	if p.cfg.ProfileDir == nil {
		return ""
	}
	return p.cfg.ProfileDir(portal)
}

// userDataDir picks the profile to launch with. Portals that do not require a
// profile still reuse one when it has been bootstrapped.
func (p *Provider) userDataDir(portal domain.Portal, required bool) (string, error) {
	dir := p.profileDir(portal)
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	if required {
		return "", fmt.Errorf("%w: run `credits login %s` first", domain.ErrProfileNotFound, portal)
	}

	return "", nil
}

func unavailable(portal domain.Portal, err error) error {
	var sessionErr *domain.SessionUnavailableError
	if errors.As(err, &sessionErr) {
		return err
	}
	return &domain.SessionUnavailableError{Portal: portal, Err: err}
}

type session struct {
	tab tab
}

func (s *session) Navigate(ctx context.Context, url string) error {
	return s.tab.navigate(ctx, url)
}

func (s *session) CurrentPageText(ctx context.Context) (string, error) {
	document, err := s.tab.html(ctx)
	if err != nil {
		return "", err
	}

	return pageText(document)
}

func (s *session) ElementText(ctx context.Context, selector string) (string, error) {
	document, err := s.tab.html(ctx)
	if err != nil {
		return "", err
	}

	return elementText(document, selector)
}

func (s *session) Close() error {
	return s.tab.close()
}
