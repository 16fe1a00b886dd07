package model

import "fmt"

// TicketWidth is the number of digits in a drawn prize number.
const TicketWidth = 5

// Ticket is a zero-padded 5-digit drawn prize number (bilhete).
type Ticket string

// Validate ensures the ticket is exactly TicketWidth decimal digits.
func (t Ticket) Validate() error {
	if len(t) != TicketWidth {
		return fmt.Errorf("ticket %q must have %d digits, got %d", string(t), TicketWidth, len(t))
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return fmt.Errorf("ticket %q has non-digit character at position %d", string(t), i)
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (t Ticket) String() string {
	return string(t)
}

// Derivation holds the codes one prize ticket produced, in prize-priority order.
type Derivation struct {
	Ticket Ticket
	Codes  []string
	Prize  int
}
