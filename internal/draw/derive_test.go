package draw

import (
	"testing"

	"github.com/Veraticus/sorteio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCodes(t *testing.T) {
	tests := []struct {
		name   string
		ticket model.Ticket
		rule   model.Rule
		want   []string
	}{
		{name: "centena", ticket: "48602", rule: model.RuleCentena, want: []string{"602", "860", "486"}},
		{name: "milhar", ticket: "48602", rule: model.RuleMilhar, want: []string{"8602", "4860"}},
		{name: "centena keeps leading zeros", ticket: "01927", rule: model.RuleCentena, want: []string{"927", "192", "019"}},
		{name: "milhar keeps leading zeros", ticket: "00070", rule: model.RuleMilhar, want: []string{"0070", "0007"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveCodes(tt.ticket, tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.rule.Windows())
			for _, code := range got {
				assert.Len(t, code, tt.rule.Width())
			}
		})
	}
}

func TestDeriveCodes_MalformedTicket(t *testing.T) {
	for _, ticket := range []model.Ticket{"", "1234", "123456", "12a45"} {
		_, err := DeriveCodes(ticket, model.RuleCentena)
		assert.ErrorIs(t, err, ErrMalformedTicket, "ticket %q", ticket)
	}
}

func TestDeriveCodes_UnknownRule(t *testing.T) {
	_, err := DeriveCodes("48602", model.Rule("dezena"))
	assert.Error(t, err)
}

func TestDeriveAll(t *testing.T) {
	got, err := DeriveAll([]model.Ticket{"48602", "01927"}, model.RuleMilhar)
	require.NoError(t, err)

	assert.Equal(t, []model.Derivation{
		{Prize: 1, Ticket: "48602", Codes: []string{"8602", "4860"}},
		{Prize: 2, Ticket: "01927", Codes: []string{"1927", "0192"}},
	}, got)
}

func TestDeriveAll_ReportsPrize(t *testing.T) {
	_, err := DeriveAll([]model.Ticket{"48602", "999"}, model.RuleCentena)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTicket)
	assert.Contains(t, err.Error(), "prize 2")
}
