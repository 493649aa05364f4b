package app

import (
	"fmt"
	"io"

	"github.com/specialistvlad/crossedwires/internal/crossing"
)

// WriteReport prints the two selected crossings, one per line.
func WriteReport(w io.Writer, res crossing.Result) error {
	if _, err := fmt.Fprintf(w, "Min. central distance of %d at %s\n", res.Central.Central, res.Central.Point); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Min. wire distance of %d at %s\n", res.Wire.WireDistance, res.Wire.Point)
	return err
}
