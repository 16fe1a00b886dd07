package cli

import (
	"bytes"
	"testing"

	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, cfg draw.Config, raw string) *draw.Analysis {
	t.Helper()
	a, err := draw.Analyze(cfg, raw)
	require.NoError(t, err)
	return a
}

func TestRenderReport(t *testing.T) {
	a := analyze(t, draw.Config{GroupSize: 1000, DisplayLimit: 600, QuotaText: "70, 486"},
		"48602, 01927, 82187, 34246, 68744")

	var buf bytes.Buffer
	err := RenderReport(&buf, a, ReportOptions{
		Printer:         draw.NewPrinter("en"),
		ShowDerivations: true,
		ShowFull:        true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, TicketIcon+" Valid tickets: 5")
	assert.Contains(t, out, "Preview: 48602, 01927, 82187, 34246, 68744")
	assert.Contains(t, out, "Centenas (3 per prize)")
	assert.Contains(t, out, "602, 860, 486")
	assert.Contains(t, out, "All generated codes")
	assert.Contains(t, out, "Closest (≤ 600)")
	assert.Contains(t, out, "927")
	assert.Contains(t, out, "specific centena")
	assert.Contains(t, out, "1.491%")
	assert.Contains(t, out, "1 in 67.07")
	assert.Contains(t, out, "My quotas")
	assert.Contains(t, out, "Yes")
}

func TestRenderReport_Empty(t *testing.T) {
	a := analyze(t, draw.Config{GroupSize: 1000, DisplayLimit: 600}, "")

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, a, ReportOptions{}))

	assert.Contains(t, buf.String(), "Enter the drawn tickets")
	assert.NotContains(t, buf.String(), "Probability")
}

func TestRenderReport_InformationalWarnings(t *testing.T) {
	a := analyze(t, draw.Config{GroupSize: 2000, DisplayLimit: 10, QuotaText: "abc"}, "98765")

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, a, ReportOptions{Printer: draw.NewPrinter("en")}))

	out := buf.String()
	assert.Contains(t, out, "Milhares (2 per prize)")
	assert.Contains(t, out, "No generated code is within the given limit.")
	assert.Contains(t, out, "No valid quota given.")
	assert.Contains(t, out, "specific milhar")
	assert.NotContains(t, out, "All generated codes")
}

func TestRenderReport_NoQuotaSection(t *testing.T) {
	a := analyze(t, draw.Config{GroupSize: 1000, DisplayLimit: 600}, "48602")

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, a, ReportOptions{}))

	assert.NotContains(t, buf.String(), "My quotas")
}
