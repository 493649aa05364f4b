package crossing

import "fmt"

// NoCrossingError is returned when well-formed wires never cross.
type NoCrossingError struct {
	Wires int
	Pairs int
}

func (e *NoCrossingError) Error() string {
	if e.Pairs == 0 {
		return fmt.Sprintf("no crossings found: %d wire(s) give no pair to compare", e.Wires)
	}
	return fmt.Sprintf("no crossings found between %d wire(s) across %d pair(s)", e.Wires, e.Pairs)
}
