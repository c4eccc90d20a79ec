package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const creditsPage = `<!doctype html>
<html>
<head><title>Kredity</title><style>.x { color: red }</style></head>
<body>
  <nav><a href="/">Nabídky</a> <a href="/kredity">Kredity</a></nav>
  <script>window.credits = 999;</script>
  <main>
    <h1>Přehled</h1>
    <div class="balance">Zbývá <strong>1486</strong>  kreditů</div>
    <p hidden>Stav kreditů: 5</p>
    <p style="display: none">777 kreditů</p>
    <table><tr><td>Nabídka</td><td>12. 3.</td></tr></table>
  </main>
</body>
</html>`

func TestPageTextKeepsVisibleBlocks(t *testing.T) {
	t.Parallel()

	text, err := pageText(creditsPage)
	require.NoError(t, err)

	assert.Equal(t, "Nabídky Kredity\nPřehled\nZbývá 1486 kreditů\nNabídka\n12. 3.", text)
	assert.NotContains(t, text, "999")
	assert.NotContains(t, text, "Stav kreditů")
	assert.NotContains(t, text, "777")
}

func TestPageTextWithoutBody(t *testing.T) {
	t.Parallel()

	text, err := pageText("Stav kreditů: 2")
	require.NoError(t, err)
	assert.Equal(t, "Stav kreditů: 2", text)
}

func TestElementText(t *testing.T) {
	t.Parallel()

	text, err := elementText(creditsPage, "div.balance strong")
	require.NoError(t, err)
	assert.Equal(t, "1486", text)
}

func TestElementTextMissing(t *testing.T) {
	t.Parallel()

	_, err := elementText(creditsPage, "#credits")
	require.ErrorIs(t, err, errElementNotFound)
}

func TestElementTextInvalidSelector(t *testing.T) {
	t.Parallel()

	_, err := elementText(creditsPage, "div[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile selector")
}
