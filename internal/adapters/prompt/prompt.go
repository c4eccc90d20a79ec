package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/bnema/portal-credits/internal/ports"
)

type line struct {
	text string
	err  error
}

// Operator asks the person at the terminal to confirm that the browser shows
// the credits page. Terminals get a huh confirm, anything else a line prompt.
type Operator struct {
	in          io.Reader
	out         io.Writer
	interactive bool

	once  sync.Once
	lines chan line
}

func New(in io.Reader, out io.Writer) *Operator {
	return &Operator{in: in, out: out, interactive: isTerminal(in) && isTerminal(out)}
}

func (o *Operator) AwaitConfirmation(ctx context.Context, prompt ports.Prompt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.interactive {
		return o.confirm(ctx, prompt)
	}
	return o.readLine(ctx, prompt)
}

func (o *Operator) confirm(ctx context.Context, prompt ports.Prompt) error {
	proceed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt.Title).
				Description(prompt.Description).
				Value(&proceed).
				Affirmative("Continue").
				Negative("Skip portal"),
		),
	).WithInput(o.in).WithOutput(o.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ports.ErrOperatorDeclined
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("confirm prompt: %w", err)
	}
	if !proceed {
		return ports.ErrOperatorDeclined
	}

	return nil
}

func (o *Operator) readLine(ctx context.Context, prompt ports.Prompt) error {
	if _, err := fmt.Fprintln(o.out, prompt.Title); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	if prompt.Description != "" {
		fmt.Fprintln(o.out, prompt.Description)
	}
	fmt.Fprint(o.out, "Press Enter to continue, or type s to skip: ")

	o.once.Do(o.startReader)

	select {
	case <-ctx.Done():
		fmt.Fprintln(o.out)
		return ctx.Err()
	case got, ok := <-o.lines:
		if !ok || got.err != nil {
			// Without input nobody can confirm the page.
			fmt.Fprintln(o.out)
			return ports.ErrOperatorDeclined
		}
		switch strings.ToLower(strings.TrimSpace(got.text)) {
		case "s", "skip", "n", "no":
			return ports.ErrOperatorDeclined
		default:
			return nil
		}
	}
}

// startReader owns the input so a prompt abandoned on cancellation does not
// leave a second reader behind.
func (o *Operator) startReader() {
	o.lines = make(chan line)
	go func() {
		defer close(o.lines)
		reader := bufio.NewReader(o.in)
		for {
			text, err := reader.ReadString('\n')
			if err != nil && (text == "" || !errors.Is(err, io.EOF)) {
				o.lines <- line{err: err}
				return
			}
			o.lines <- line{text: text}
			if err != nil {
				return
			}
		}
	}()
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
