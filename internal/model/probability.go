package model

// ProbabilityResult is the chance that one specific code is realized by a draw.
type ProbabilityResult struct {
	Rule        Rule
	Probability float64
	Tickets     int
}

// Unit returns the code unit label ("centena" or "milhar").
func (p ProbabilityResult) Unit() string {
	return string(p.Rule)
}

// Odds returns N for a "1 in N" chance, or zero when the probability is zero.
func (p ProbabilityResult) Odds() float64 {
	if p.Probability <= 0 {
		return 0
	}
	return 1 / p.Probability
}
