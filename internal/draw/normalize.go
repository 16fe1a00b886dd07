// Package draw derives the centena and milhar codes implied by a consortium draw
// and estimates how likely a given code is to come out.
package draw

import (
	"strings"

	"github.com/Veraticus/sorteio/internal/model"
)

// splitSegments breaks free-form input on commas, semicolons and line breaks.
// Segments are trimmed; empty ones are dropped.
func splitSegments(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})

	segments := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// digitsOnly keeps the ASCII digits of s, in order.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// NormalizeTicket turns one input segment into a ticket. Only digits are kept;
// longer numbers keep their last five digits and shorter ones are zero-padded.
// It reports false when the segment holds no digit at all.
func NormalizeTicket(segment string) (model.Ticket, bool) {
	digits := digitsOnly(segment)
	if digits == "" {
		return "", false
	}
	if len(digits) > model.TicketWidth {
		digits = digits[len(digits)-model.TicketWidth:]
	}
	return model.Ticket(leftPad(digits, model.TicketWidth)), true
}

// ParseTickets parses raw ticket text into tickets, preserving input order and
// duplicates. Segments without digits are skipped silently.
func ParseTickets(raw string) []model.Ticket {
	segments := splitSegments(raw)
	tickets := make([]model.Ticket, 0, len(segments))
	for _, seg := range segments {
		if t, ok := NormalizeTicket(seg); ok {
			tickets = append(tickets, t)
		}
	}
	return tickets
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
