package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/crossedwires/internal/ctxlog"
	"github.com/specialistvlad/crossedwires/internal/wire"
)

// TextLoader reads one wire per line. Blank lines are skipped.
type TextLoader struct{}

func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

func (l *TextLoader) Load(ctx context.Context, path string) ([]wire.Wire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	wires, err := ParseText(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ctxlog.FromContext(ctx).Debug("Text input parsed.", "path", path, "wires", len(wires))
	return wires, nil
}

// ParseText parses the text format. Wires are named wire1, wire2, ... in the
// order they appear.
func ParseText(text string) ([]wire.Wire, error) {
	var wires []wire.Wire
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		n := len(wires) + 1
		codes, err := wire.ParseLine(line)
		if err != nil {
			var pe *wire.ParseError
			if errors.As(err, &pe) {
				pe.Wire = n
			}
			return nil, err
		}
		wires = append(wires, wire.Wire{Name: fmt.Sprintf("wire%d", n), Codes: codes})
	}
	return wires, nil
}
