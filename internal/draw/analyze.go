package draw

import (
	"fmt"

	"github.com/Veraticus/sorteio/internal/model"
)

// Config holds the per-request inputs besides the ticket text.
type Config struct {
	QuotaText    string
	GroupSize    int
	DisplayLimit int
}

// Analysis is the full result of one pass over a draw.
type Analysis struct {
	Config      Config
	Rule        model.Rule
	Tickets     []model.Ticket
	Derivations []model.Derivation
	Full        model.CodeTable
	Filtered    model.CodeTable
	Quotas      []model.QuotaCheck
	Probability model.ProbabilityResult
}

// Empty reports whether the input held no ticket yet.
func (a *Analysis) Empty() bool {
	return len(a.Tickets) == 0
}

// NothingWithinLimit reports whether no code falls at or below the display limit.
func (a *Analysis) NothingWithinLimit() bool {
	return !a.Empty() && len(a.Filtered) == 0
}

// QuotasRequested reports whether the participant entered any quota text.
func (a *Analysis) QuotasRequested() bool {
	return len(splitSegments(a.Config.QuotaText)) > 0
}

// NoValidQuotas reports whether quota text was given but none of it was numeric.
func (a *Analysis) NoValidQuotas() bool {
	return !a.Empty() && a.QuotasRequested() && len(a.Quotas) == 0
}

// Contemplated returns the quotas that came out in the draw.
func (a *Analysis) Contemplated() []string {
	var hits []string
	for _, q := range a.Quotas {
		if q.Contemplated {
			hits = append(hits, q.Code)
		}
	}
	return hits
}

// Analyze runs the whole pipeline on raw ticket text. With no ticket in the
// input it stops after parsing and returns an empty analysis.
func Analyze(cfg Config, raw string) (*Analysis, error) {
	rule := SelectRule(cfg.GroupSize)
	a := &Analysis{
		Config:   cfg,
		Rule:     rule,
		Tickets:  ParseTickets(raw),
		Full:     model.CodeTable{},
		Filtered: model.CodeTable{},
	}
	if a.Empty() {
		return a, nil
	}

	derivations, err := DeriveAll(a.Tickets, rule)
	if err != nil {
		return nil, fmt.Errorf("failed to derive codes: %w", err)
	}
	a.Derivations = derivations
	a.Full = Consolidate(derivations)
	a.Filtered = FilterWithin(a.Full, cfg.DisplayLimit)
	a.Probability = EstimateProbability(cfg.GroupSize, len(a.Tickets))
	a.Quotas = CheckQuotas(NormalizeQuotas(cfg.QuotaText, rule), a.Full)

	return a, nil
}
