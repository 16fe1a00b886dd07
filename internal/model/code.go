package model

import (
	"sort"
	"strconv"
)

// CodeEntry is one consolidated code with the ticket chosen to represent it.
// Tickets lists every distinct ticket that produced the code, ascending.
type CodeEntry struct {
	Code    string
	Ticket  Ticket
	Tickets []Ticket
}

// Value returns the numeric value of the code. Codes are always digit strings;
// a malformed code sorts as zero.
func (e CodeEntry) Value() int {
	v, err := strconv.Atoi(e.Code)
	if err != nil {
		return 0
	}
	return v
}

// CodeTable is an ordered list of consolidated codes.
type CodeTable []CodeEntry

// Len implements sort.Interface.
func (t CodeTable) Len() int {
	return len(t)
}

// Less implements sort.Interface - ascending by numeric code, then by ticket.
func (t CodeTable) Less(i, j int) bool {
	vi, vj := t[i].Value(), t[j].Value()
	if vi != vj {
		return vi < vj
	}
	return t[i].Ticket < t[j].Ticket
}

// Swap implements sort.Interface.
func (t CodeTable) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}

// Sort orders the table ascending by code value.
func (t CodeTable) Sort() {
	sort.Stable(t)
}

// SortDescending orders the table by code value, highest first.
func (t CodeTable) SortDescending() {
	sort.Stable(sort.Reverse(t))
}

// Codes returns the code values in table order.
func (t CodeTable) Codes() []string {
	codes := make([]string, len(t))
	for i, e := range t {
		codes[i] = e.Code
	}
	return codes
}

// Set returns the table's codes as a membership set.
func (t CodeTable) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(t))
	for _, e := range t {
		set[e.Code] = struct{}{}
	}
	return set
}
