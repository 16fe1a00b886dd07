package draw

import (
	"testing"

	"github.com/Veraticus/sorteio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func derive(t *testing.T, rule model.Rule, tickets ...model.Ticket) []model.Derivation {
	t.Helper()
	derivations, err := DeriveAll(tickets, rule)
	require.NoError(t, err)
	return derivations
}

func TestConsolidate_SortedAscending(t *testing.T) {
	full := Consolidate(derive(t, model.RuleCentena, "48602", "01927", "82187", "34246", "68744"))

	assert.Equal(t, []string{
		"019", "187", "192", "218", "246", "342", "424", "486",
		"602", "687", "744", "821", "860", "874", "927",
	}, full.Codes())
	assert.Equal(t, model.Ticket("01927"), full[0].Ticket)
}

func TestConsolidate_Deduplicates(t *testing.T) {
	want := model.CodeTable{
		{Code: "123", Ticket: "12345", Tickets: []model.Ticket{"12345", "91234"}},
		{Code: "234", Ticket: "12345", Tickets: []model.Ticket{"12345", "91234"}},
		{Code: "345", Ticket: "12345", Tickets: []model.Ticket{"12345"}},
		{Code: "912", Ticket: "91234", Tickets: []model.Ticket{"91234"}},
	}

	t.Run("lowest ticket represents a shared code", func(t *testing.T) {
		assert.Equal(t, want, Consolidate(derive(t, model.RuleCentena, "12345", "91234")))
	})

	t.Run("input order does not matter", func(t *testing.T) {
		assert.Equal(t, want, Consolidate(derive(t, model.RuleCentena, "91234", "12345")))
	})
}

func TestConsolidate_RepeatedTicket(t *testing.T) {
	full := Consolidate(derive(t, model.RuleMilhar, "11111", "11111"))

	require.Len(t, full, 1)
	assert.Equal(t, "1111", full[0].Code)
	assert.Equal(t, []model.Ticket{"11111"}, full[0].Tickets)
}

func TestConsolidate_Empty(t *testing.T) {
	assert.Empty(t, Consolidate(nil))
}

func TestFilterWithin(t *testing.T) {
	full := Consolidate(derive(t, model.RuleCentena, "48602", "01927", "82187", "34246", "68744"))

	tests := []struct {
		name  string
		want  []string
		limit int
	}{
		{
			name:  "default limit",
			limit: 600,
			want:  []string{"486", "424", "342", "246", "218", "192", "187", "019"},
		},
		{
			name:  "limit equal to a code is inclusive",
			limit: 602,
			want:  []string{"602", "486", "424", "342", "246", "218", "192", "187", "019"},
		},
		{
			name:  "nothing within limit",
			limit: 10,
			want:  []string{},
		},
		{
			name:  "everything within limit",
			limit: 10000,
			want: []string{
				"927", "874", "860", "821", "744", "687", "602", "486",
				"424", "342", "246", "218", "192", "187", "019",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterWithin(full, tt.limit)
			assert.Equal(t, tt.want, got.Codes())
			for _, e := range got {
				assert.LessOrEqual(t, e.Value(), tt.limit)
			}
		})
	}
}

func TestFilterWithin_DoesNotReorderFullView(t *testing.T) {
	full := Consolidate(derive(t, model.RuleCentena, "48602"))
	_ = FilterWithin(full, 1000)

	assert.Equal(t, []string{"486", "602", "860"}, full.Codes())
}
