package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/model"
	"golang.org/x/text/message"
)

// ReportOptions selects which parts of a draw report are rendered.
type ReportOptions struct {
	Printer         *message.Printer
	ShowDerivations bool
	ShowFull        bool
}

// RenderReport writes the human-readable report of an analysis to w.
func RenderReport(w io.Writer, a *draw.Analysis, opts ReportOptions) error {
	if opts.Printer == nil {
		opts.Printer = draw.NewPrinter(draw.DefaultLocale)
	}

	var b strings.Builder

	b.WriteString(FormatSection("1) Drawn tickets") + "\n")
	if a.Empty() {
		b.WriteString(FormatInfo("Enter the drawn tickets to get started.") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	fmt.Fprintf(&b, "%s Valid tickets: %d\n", TicketIcon, len(a.Tickets))
	fmt.Fprintf(&b, "Preview: %s\n\n", joinTickets(a.Tickets))

	b.WriteString(FormatSection("2) Codes generated by the rule") + "\n")
	fmt.Fprintf(&b, "Rule applied: %s\n\n", BoldStyle.Render(a.Rule.Label()))
	if opts.ShowDerivations {
		if err := writeDerivations(&b, a.Derivations); err != nil {
			return err
		}
		b.WriteString("\n")
	}
	if opts.ShowFull {
		b.WriteString("All generated codes (no filter):\n")
		if err := writeCodeTable(&b, a.Full); err != nil {
			return err
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Closest (≤ %d):\n", a.Config.DisplayLimit)
	if a.NothingWithinLimit() {
		b.WriteString(FormatWarning("No generated code is within the given limit.") + "\n")
	} else if err := writeCodeTable(&b, a.Filtered); err != nil {
		return err
	}
	b.WriteString("\n")

	b.WriteString(FormatSection("3) Probability per draw") + "\n")
	b.WriteString(RenderProbability(opts.Printer, a.Probability) + "\n")

	if a.QuotasRequested() {
		b.WriteString("\n" + FormatSection("4) My quotas") + "\n")
		if a.NoValidQuotas() {
			b.WriteString(FormatWarning("No valid quota given.") + "\n")
		} else if err := writeQuotaTable(&b, a.Quotas); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderProbability renders the probability box for one specific code.
func RenderProbability(p *message.Printer, r model.ProbabilityResult) string {
	content := fmt.Sprintf("Chance of one specific %s coming out in at least one prize of this draw:\n%s   (odds ≈ %s)",
		r.Unit(),
		BoldStyle.Render(draw.FormatPercent(p, r)),
		draw.FormatOdds(p, r))
	return RenderBox(ChartIcon+" Probability per draw", content)
}

func joinTickets(tickets []model.Ticket) string {
	parts := make([]string, len(tickets))
	for i, t := range tickets {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeCodeTable(w io.Writer, table model.CodeTable) error {
	tw := newTable(w)
	if _, err := fmt.Fprintf(tw, "%s\t%s\n",
		TableHeaderStyle.Render("numero"),
		TableHeaderStyle.Render("bilhete")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range table {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", e.Code, e.Ticket); err != nil {
			return fmt.Errorf("failed to write code row: %w", err)
		}
	}
	return tw.Flush()
}

func writeDerivations(w io.Writer, derivations []model.Derivation) error {
	tw := newTable(w)
	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
		TableHeaderStyle.Render("prize"),
		TableHeaderStyle.Render("bilhete"),
		TableHeaderStyle.Render("codes")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, d := range derivations {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\n", d.Prize, d.Ticket, strings.Join(d.Codes, ", ")); err != nil {
			return fmt.Errorf("failed to write derivation row: %w", err)
		}
	}
	return tw.Flush()
}

func writeQuotaTable(w io.Writer, checks []model.QuotaCheck) error {
	tw := newTable(w)
	if _, err := fmt.Fprintf(tw, "%s\t%s\n",
		TableHeaderStyle.Render("cota"),
		TableHeaderStyle.Render("contemplated this draw?")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range checks {
		status := ErrorStyle.Render("No")
		if c.Contemplated {
			status = SuccessStyle.Render(SuccessIcon + " Yes")
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", c.Code, status); err != nil {
			return fmt.Errorf("failed to write quota row: %w", err)
		}
	}
	return tw.Flush()
}
