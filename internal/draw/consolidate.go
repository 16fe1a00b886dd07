package draw

import "github.com/Veraticus/sorteio/internal/model"

// Consolidate merges the codes of all derivations into one table with a
// single entry per code, ascending by code value. The representative ticket
// of a repeated code is the lowest ticket that produced it.
func Consolidate(derivations []model.Derivation) model.CodeTable {
	var pairs model.CodeTable
	for _, d := range derivations {
		for _, code := range d.Codes {
			pairs = append(pairs, model.CodeEntry{Code: code, Ticket: d.Ticket})
		}
	}
	pairs.Sort()

	table := make(model.CodeTable, 0, len(pairs))
	index := make(map[string]int, len(pairs))
	for _, p := range pairs {
		i, seen := index[p.Code]
		if !seen {
			index[p.Code] = len(table)
			table = append(table, model.CodeEntry{
				Code:    p.Code,
				Ticket:  p.Ticket,
				Tickets: []model.Ticket{p.Ticket},
			})
			continue
		}
		// pairs are sorted by ticket within a code, so duplicates are adjacent
		tickets := table[i].Tickets
		if tickets[len(tickets)-1] != p.Ticket {
			table[i].Tickets = append(tickets, p.Ticket)
		}
	}
	return table
}

// FilterWithin returns the entries whose code value is at most limit, closest
// to the limit first. An empty result is a valid outcome.
func FilterWithin(table model.CodeTable, limit int) model.CodeTable {
	filtered := model.CodeTable{}
	for _, e := range table {
		if e.Value() <= limit {
			filtered = append(filtered, e)
		}
	}
	filtered.SortDescending()
	return filtered
}
