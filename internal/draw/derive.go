package draw

import (
	"errors"
	"fmt"

	"github.com/Veraticus/sorteio/internal/model"
)

// ErrMalformedTicket is returned when a ticket that is not exactly five digits
// reaches the deriver. ParseTickets never produces one.
var ErrMalformedTicket = errors.New("malformed ticket")

// window is a half-open digit range [start, end) of a ticket.
type window struct {
	start, end int
}

// ruleWindows lists the windows cut from a ticket, in prize-priority order.
var ruleWindows = map[model.Rule][]window{
	// last three, middle three, first three
	model.RuleCentena: {{2, 5}, {1, 4}, {0, 3}},
	// last four, first four
	model.RuleMilhar: {{1, 5}, {0, 4}},
}

// DeriveCodes cuts the rule's windows out of a ticket.
func DeriveCodes(t model.Ticket, rule model.Rule) ([]string, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTicket, err)
	}

	wins, ok := ruleWindows[rule]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q", rule)
	}

	s := string(t)
	codes := make([]string, len(wins))
	for i, w := range wins {
		codes[i] = s[w.start:w.end]
	}
	return codes, nil
}

// DeriveAll derives the codes of every ticket, one derivation per prize in
// input order. Prizes are numbered from 1.
func DeriveAll(tickets []model.Ticket, rule model.Rule) ([]model.Derivation, error) {
	derivations := make([]model.Derivation, 0, len(tickets))
	for i, t := range tickets {
		codes, err := DeriveCodes(t, rule)
		if err != nil {
			return nil, fmt.Errorf("prize %d: %w", i+1, err)
		}
		derivations = append(derivations, model.Derivation{
			Prize:  i + 1,
			Ticket: t,
			Codes:  codes,
		})
	}
	return derivations, nil
}
