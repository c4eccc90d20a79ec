package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// tab is one visible browser window driven on behalf of the operator.
type tab interface {
	navigate(ctx context.Context, url string) error
	reload(ctx context.Context) error
	// settle waits for the current page to stop loading.
	settle(ctx context.Context) error
	html(ctx context.Context) (string, error)
	close() error
}

type chromeTab struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
	idle        chan struct{}
	idleWait    time.Duration
	logger      *slog.Logger
}

// launchChrome starts a headed browser. An empty userDataDir gives a
// throwaway profile.
func launchChrome(ctx context.Context, execPath, userDataDir string, idleWait time.Duration, logger *slog.Logger) (tab, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("hide-scrollbars", false),
		chromedp.Flag("mute-audio", false),
		chromedp.WindowSize(1280, 900),
	)
	if userDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(userDataDir))
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}

	// The browser outlives the call that opened it; Close tears it down.
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	t := &chromeTab{
		ctx:         tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
		idle:        make(chan struct{}, 1),
		idleWait:    idleWait,
		logger:      logger,
	}

	chromedp.ListenTarget(tabCtx, func(ev any) {
		if lifecycle, ok := ev.(*page.EventLifecycleEvent); ok && lifecycle.Name == "networkIdle" {
			select {
			case t.idle <- struct{}{}:
			default:
			}
		}
	})

	if err := t.run(ctx, page.SetLifecycleEventsEnabled(true)); err != nil {
		_ = t.close()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return t, nil
}

func (t *chromeTab) navigate(ctx context.Context, url string) error {
	t.drainIdle()
	if err := t.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}

	return t.waitIdle(ctx)
}

func (t *chromeTab) reload(ctx context.Context) error {
	t.drainIdle()
	if err := t.run(ctx, chromedp.Reload()); err != nil {
		return fmt.Errorf("reload page: %w", err)
	}

	return t.waitIdle(ctx)
}

func (t *chromeTab) settle(ctx context.Context) error {
	return t.waitIdle(ctx)
}

func (t *chromeTab) html(ctx context.Context) (string, error) {
	var document string
	if err := t.run(ctx, chromedp.OuterHTML("html", &document, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}

	return document, nil
}

func (t *chromeTab) close() error {
	err := chromedp.Cancel(t.ctx)
	t.cancelTab()
	t.cancelAlloc()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("close browser: %w", err)
	}

	return nil
}

// run executes actions on the tab while honoring the caller's cancellation.
func (t *chromeTab) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(t.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}

	return nil
}

// waitIdle gives late requests a chance to settle. Pages that keep polling
// never go idle, so the wait is bounded and a timeout is not an error.
func (t *chromeTab) waitIdle(ctx context.Context) error {
	if t.idleWait <= 0 {
		return nil
	}

	timer := time.NewTimer(t.idleWait)
	defer timer.Stop()

	select {
	case <-t.idle:
		return nil
	case <-timer.C:
		t.logger.Debug("network did not go idle", "waited", t.idleWait)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *chromeTab) drainIdle() {
	select {
	case <-t.idle:
	default:
	}
}
