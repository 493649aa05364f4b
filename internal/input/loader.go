package input

import (
	"context"
	"os"
	"path/filepath"

	"github.com/specialistvlad/crossedwires/internal/ctxlog"
	"github.com/specialistvlad/crossedwires/internal/fsutil"
	"github.com/specialistvlad/crossedwires/internal/wire"
)

// HCLExtension marks circuit files in HCL format.
const HCLExtension = ".hcl"

// Loader reads wires from a path.
type Loader interface {
	Load(ctx context.Context, path string) ([]wire.Wire, error)
}

// AutoLoader picks a format by looking at the path: directories and .hcl
// files are read as HCL, anything else as text.
type AutoLoader struct {
	Text *TextLoader
	HCL  *HCLLoader
}

// NewLoader returns an AutoLoader with both formats enabled.
func NewLoader() *AutoLoader {
	return &AutoLoader{Text: NewTextLoader(), HCL: NewHCLLoader()}
}

func (l *AutoLoader) Load(ctx context.Context, path string) ([]wire.Wire, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	if info.IsDir() {
		files, err := fsutil.FindFiles(path, HCLExtension)
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		if len(files) == 0 {
			return nil, &ReadError{Path: path, Err: ErrNoInputFiles}
		}
		logger.Debug("Discovered circuit files.", "dir", path, "count", len(files))
		return l.HCL.LoadFiles(ctx, files...)
	}

	if fsutil.HasExtension(filepath.Base(path), HCLExtension) {
		return l.HCL.Load(ctx, path)
	}
	return l.Text.Load(ctx, path)
}
