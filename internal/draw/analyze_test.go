package draw

import (
	"testing"

	"github.com/Veraticus/sorteio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	cfg := Config{GroupSize: 1000, DisplayLimit: 600, QuotaText: "70, 486, 999"}

	a, err := Analyze(cfg, "48602, 01927, 82187, 34246, 68744")
	require.NoError(t, err)

	assert.False(t, a.Empty())
	assert.Equal(t, model.RuleCentena, a.Rule)
	assert.Len(t, a.Tickets, 5)
	assert.Len(t, a.Derivations, 5)
	assert.Len(t, a.Full, 15)
	assert.Equal(t, "486", a.Filtered[0].Code)
	assert.False(t, a.NothingWithinLimit())
	assert.Equal(t, 5, a.Probability.Tickets)
	assert.Equal(t, []model.QuotaCheck{
		{Code: "070", Contemplated: false},
		{Code: "486", Contemplated: true},
		{Code: "999", Contemplated: false},
	}, a.Quotas)
	assert.Equal(t, []string{"486"}, a.Contemplated())
	assert.True(t, a.QuotasRequested())
	assert.False(t, a.NoValidQuotas())
}

func TestAnalyze_Milhar(t *testing.T) {
	a, err := Analyze(Config{GroupSize: 5000, DisplayLimit: 5000}, "48602\n1927")
	require.NoError(t, err)

	assert.Equal(t, model.RuleMilhar, a.Rule)
	assert.Equal(t, []string{"0192", "1927", "4860", "8602"}, a.Full.Codes())
	assert.Equal(t, []string{"4860", "1927", "0192"}, a.Filtered.Codes())
	assert.False(t, a.QuotasRequested())
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a, err := Analyze(Config{GroupSize: 1000, DisplayLimit: 600, QuotaText: "70"}, " , ;\n")
	require.NoError(t, err)

	assert.True(t, a.Empty())
	assert.Empty(t, a.Full)
	assert.Empty(t, a.Filtered)
	assert.Empty(t, a.Quotas)
	assert.False(t, a.NothingWithinLimit())
}

func TestAnalyze_InformationalStates(t *testing.T) {
	a, err := Analyze(Config{GroupSize: 1000, DisplayLimit: 5, QuotaText: "abc, x"}, "98765")
	require.NoError(t, err)

	assert.True(t, a.NothingWithinLimit())
	assert.True(t, a.NoValidQuotas())
	assert.Empty(t, a.Contemplated())
}
