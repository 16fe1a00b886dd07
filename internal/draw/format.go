package draw

import (
	"github.com/Veraticus/sorteio/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no display locale is configured.
const DefaultLocale = "pt-BR"

const (
	percentFormat = "%.3f%%"
	oddsFormat    = "1 in %.2f"
)

func init() {
	_ = message.SetString(language.BrazilianPortuguese, oddsFormat, "1 em %.2f")
}

// NewPrinter returns a printer for the given locale, falling back to
// DefaultLocale when the tag cannot be parsed.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return message.NewPrinter(tag)
}

// FormatPercent renders the probability as a percentage with three decimals.
func FormatPercent(p *message.Printer, r model.ProbabilityResult) string {
	return p.Sprintf(percentFormat, r.Probability*100)
}

// FormatOdds renders the probability as "1 in N".
func FormatOdds(p *message.Printer, r model.ProbabilityResult) string {
	return p.Sprintf(oddsFormat, r.Odds())
}
