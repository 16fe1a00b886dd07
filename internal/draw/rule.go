package draw

import "github.com/Veraticus/sorteio/internal/model"

// SelectRule returns the derivation rule for a group of the given size:
// centena up to 1000 quotas, milhar above that.
func SelectRule(groupSize int) model.Rule {
	if groupSize <= model.CentenaMaxGroupSize {
		return model.RuleCentena
	}
	return model.RuleMilhar
}
