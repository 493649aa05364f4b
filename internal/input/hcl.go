package input

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/crossedwires/internal/ctxlog"
	"github.com/specialistvlad/crossedwires/internal/wire"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// circuitFile is the top-level schema of an HCL circuit file.
type circuitFile struct {
	Wires []*wireBlock `hcl:"wire,block"`
}

type wireBlock struct {
	Name string         `hcl:"name,label"`
	Path hcl.Expression `hcl:"path"`
}

// HCLLoader reads `wire` blocks from HCL files. The `path` attribute may be a
// string such as "R8,U5" or a list of codes such as ["R8", "U5"], and may use
// the join, concat, split and upper functions.
type HCLLoader struct {
	evalCtx *hcl.EvalContext
}

func NewHCLLoader() *HCLLoader {
	return &HCLLoader{
		evalCtx: &hcl.EvalContext{
			Functions: map[string]function.Function{
				"concat": stdlib.ConcatFunc,
				"join":   stdlib.JoinFunc,
				"split":  stdlib.SplitFunc,
				"upper":  stdlib.UpperFunc,
			},
		},
	}
}

func (l *HCLLoader) Load(ctx context.Context, path string) ([]wire.Wire, error) {
	return l.LoadFiles(ctx, path)
}

// LoadFiles decodes every file in order and returns their wires
// concatenated. Wire names must be unique across all files.
func (l *HCLLoader) LoadFiles(ctx context.Context, files ...string) ([]wire.Wire, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()

	var wires []wire.Wire
	seen := make(map[string]string)

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, &ReadError{Path: file, Err: err}
		}

		f, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, &DecodeError{Path: file, Err: diags}
		}

		var root circuitFile
		if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
			return nil, &DecodeError{Path: file, Err: diags}
		}

		for _, blk := range root.Wires {
			if prev, dup := seen[blk.Name]; dup {
				return nil, &DecodeError{Path: file, Err: fmt.Errorf("wire %q already declared in %s", blk.Name, prev)}
			}
			seen[blk.Name] = file

			codes, err := l.decodePath(blk.Path)
			if err != nil {
				var pe *wire.ParseError
				if errors.As(err, &pe) {
					pe.Wire = len(wires) + 1
					return nil, fmt.Errorf("%s: wire %q: %w", file, blk.Name, err)
				}
				return nil, &DecodeError{Path: file, Err: fmt.Errorf("wire %q: %w", blk.Name, err)}
			}
			wires = append(wires, wire.Wire{Name: blk.Name, Codes: codes})
		}
		logger.Debug("Circuit file decoded.", "path", file, "wires", len(root.Wires))
	}

	return wires, nil
}

// decodePath evaluates a `path` expression into codes.
func (l *HCLLoader) decodePath(expr hcl.Expression) ([]wire.Code, error) {
	val, diags := expr.Value(l.evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, errors.New("path is required and must be a known value")
	}

	if val.Type() == cty.String {
		return wire.ParseLine(val.AsString())
	}

	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("path must be a string or a list of strings, got %s", ty.FriendlyName())
	}
	if ty.IsSetType() {
		return nil, errors.New("path must be ordered; use a list instead of a set")
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("path must be a list of strings: %w", err)
	}

	raw := make([]string, 0, list.LengthInt())
	for it := list.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() {
			return nil, errors.New("path contains a null code")
		}
		raw = append(raw, v.AsString())
	}
	return wire.ParseCodes(raw)
}
