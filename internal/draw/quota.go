package draw

import (
	"strings"

	"github.com/Veraticus/sorteio/internal/model"
)

// NormalizeQuotas parses the participant's quota list and pads every numeric
// entry to the rule's code width, so "70" becomes "070" under centena.
// Non-numeric entries are dropped. Order and duplicates are preserved.
func NormalizeQuotas(raw string, rule model.Rule) []string {
	segments := splitSegments(raw)
	quotas := make([]string, 0, len(segments))
	for _, seg := range segments {
		if q, ok := NormalizeQuota(seg, rule); ok {
			quotas = append(quotas, q)
		}
	}
	return quotas
}

// NormalizeQuota pads a single quota number to the rule's width. It reports
// false unless s is made only of digits. Numbers wider than the rule are kept
// as-is and will never match a code.
func NormalizeQuota(s string, rule model.Rule) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || digitsOnly(s) != s {
		return "", false
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return leftPad(s, rule.Width()), true
}

// CheckQuotas tests each normalized quota against the consolidated codes of
// the draw.
func CheckQuotas(quotas []string, full model.CodeTable) []model.QuotaCheck {
	drawn := full.Set()
	checks := make([]model.QuotaCheck, len(quotas))
	for i, q := range quotas {
		_, hit := drawn[q]
		checks[i] = model.QuotaCheck{Code: q, Contemplated: hit}
	}
	return checks
}
