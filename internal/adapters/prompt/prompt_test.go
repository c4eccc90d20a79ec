package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bnema/portal-credits/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePrompt = ports.Prompt{
	Title:       "Teamio: is the credits page showing?",
	Description: "Log in if asked, then confirm.",
}

func TestLinePromptEnterContinues(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	operator := New(strings.NewReader("\n"), &out)

	require.NoError(t, operator.AwaitConfirmation(context.Background(), samplePrompt))
	assert.Contains(t, out.String(), "Teamio: is the credits page showing?")
	assert.Contains(t, out.String(), "Log in if asked, then confirm.")
	assert.Contains(t, out.String(), "Press Enter to continue")
}

func TestLinePromptSkip(t *testing.T) {
	t.Parallel()

	operator := New(strings.NewReader("s\n\n"), io.Discard)

	err := operator.AwaitConfirmation(context.Background(), samplePrompt)
	require.ErrorIs(t, err, ports.ErrOperatorDeclined)
	require.NoError(t, operator.AwaitConfirmation(context.Background(), samplePrompt))
}

func TestLinePromptLastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	operator := New(strings.NewReader("ok"), io.Discard)

	require.NoError(t, operator.AwaitConfirmation(context.Background(), samplePrompt))
}

func TestLinePromptClosedInputDeclines(t *testing.T) {
	t.Parallel()

	operator := New(strings.NewReader(""), io.Discard)

	err := operator.AwaitConfirmation(context.Background(), samplePrompt)
	require.ErrorIs(t, err, ports.ErrOperatorDeclined)
}

func TestLinePromptCanceled(t *testing.T) {
	t.Parallel()

	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })
	operator := New(reader, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := operator.AwaitConfirmation(ctx, samplePrompt)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
