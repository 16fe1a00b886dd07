package model

// Rule selects how codes are cut out of a ticket.
type Rule string

const (
	// RuleCentena cuts three 3-digit windows per ticket. Used by groups of up to 1000 quotas.
	RuleCentena Rule = "centena"
	// RuleMilhar cuts two 4-digit windows per ticket. Used by groups of 1001 to 10000 quotas.
	RuleMilhar Rule = "milhar"
)

// CentenaMaxGroupSize is the largest group size that still draws by centena.
const CentenaMaxGroupSize = 1000

// Width returns the number of digits in a code produced by the rule.
func (r Rule) Width() int {
	if r == RuleMilhar {
		return 4
	}
	return 3
}

// Windows returns how many codes each ticket yields under the rule.
func (r Rule) Windows() int {
	if r == RuleMilhar {
		return 2
	}
	return 3
}

// SpaceSize returns the number of distinct codes of the rule's width.
func (r Rule) SpaceSize() int {
	if r == RuleMilhar {
		return 10000
	}
	return 1000
}

// Label returns a human description of the rule.
func (r Rule) Label() string {
	if r == RuleMilhar {
		return "Milhares (2 per prize)"
	}
	return "Centenas (3 per prize)"
}

// String implements fmt.Stringer.
func (r Rule) String() string {
	return string(r)
}
