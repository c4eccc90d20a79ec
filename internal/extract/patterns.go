package extract

import (
	"regexp"
	"strconv"

	"github.com/bnema/portal-credits/internal/domain"
)

// unitWord is the closed set of credit unit words. The trailing group keeps
// "kreditech" or "creditor" from matching.
const unitWord = `(?:kredit(?:ů|y)?|credits?)(?:[^\p{L}\p{N}_]|$)`

var (
	numberBeforeUnit = regexp.MustCompile(`(?i)(\d+)\s*` + unitWord)
	unitBeforeNumber = regexp.MustCompile(`(?i)(?:kredit(?:ů|y)?|credits?)\s*(\d+)`)
	inworkStatus     = regexp.MustCompile(`(?i)Stav\s+kreditů\s*:\s*(\d+)`)
)

type match struct {
	value int
	found bool
}

type pattern struct {
	name string
	re   *regexp.Regexp
}

func (p pattern) find(text string) match {
	groups := p.re.FindStringSubmatch(text)
	if len(groups) < 2 {
		return match{}
	}

	value, ok := parseCredits(groups[1])
	if !ok {
		return match{}
	}

	return match{value: value, found: true}
}

func parseCredits(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}

	value, err := strconv.Atoi(digits)
	if err != nil || value < 0 {
		return 0, false
	}

	return value, true
}

type portalPatterns struct {
	patterns []pattern
	hint     string
}

var genericPatterns = []pattern{
	{name: "number-before-unit", re: numberBeforeUnit},
	{name: "unit-before-number", re: unitBeforeNumber},
}

var registry = map[domain.Portal]portalPatterns{
	domain.PortalTeamio: {
		patterns: genericPatterns,
		hint:     "make sure the Teamio dashboard with 'Zbývající předplatné' and a line like '1486  kreditů' is open",
	},
	domain.PortalInWork: {
		patterns: append([]pattern{{name: "inwork-status", re: inworkStatus}}, genericPatterns...),
		hint:     "make sure the InWork overview showing text like 'Stav kreditů: 2' is open",
	},
}

func patternsFor(portal domain.Portal) portalPatterns {
	if p, ok := registry[portal]; ok {
		return p
	}

	return portalPatterns{
		patterns: genericPatterns,
		hint:     "make sure the page shows the credits balance, e.g. '10 credits'",
	}
}

// Hint describes what the portal page is expected to show.
func Hint(portal domain.Portal) string {
	return patternsFor(portal).hint
}
