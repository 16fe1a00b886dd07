package draw

import (
	"math"

	"github.com/Veraticus/sorteio/internal/model"
)

// EstimateProbability returns the chance that one specific code comes out in
// a draw of ticketCount prizes for a group of groupSize quotas.
//
// Each ticket is treated as an independent trial hitting a given code with
// probability windows/space, so p = 1 - (1 - windows/space)^n. This is an
// approximation: prizes within one draw are not truly independent. The ticket
// count is floored at 1.
func EstimateProbability(groupSize, ticketCount int) model.ProbabilityResult {
	rule := SelectRule(groupSize)
	n := max(1, ticketCount)

	perTicket := float64(rule.Windows()) / float64(rule.SpaceSize())
	p := 1 - math.Pow(1-perTicket, float64(n))

	return model.ProbabilityResult{
		Rule:        rule,
		Probability: p,
		Tickets:     n,
	}
}
