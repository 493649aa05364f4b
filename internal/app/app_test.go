package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/crossedwires/internal/crossing"
	"github.com/specialistvlad/crossedwires/internal/geom"
	"github.com/specialistvlad/crossedwires/internal/input"
	"github.com/specialistvlad/crossedwires/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

func TestRun_Sample(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeInput(t, "input.txt", "R8,U5,L5,D3\nU7,R6,D4,L4\n")
	testApp, out, logs := SetupAppTest(t, path, 1)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Min. central distance of 6 at [3 3]\nMin. wire distance of 30 at [6 5]\n", out.String())
	assert.Contains(t, logs.String(), "Wires loaded.")
}

func TestRun_HCLInputWithWorkers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeInput(t, "circuit.hcl", `
wire "a" {
  path = "R75,D30,R83,U83,L12,D49,R71,U7,L72"
}
wire "b" {
  path = "U62,R66,U55,R34,D71,R55,D58,R83"
}
`)
	testApp, _, _ := SetupAppTest(t, path, 4)

	// --- Act ---
	res, err := testApp.Solve(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 159, res.Central.Central)
	assert.Equal(t, 610, res.Wire.WireDistance)
}

func TestRun_ErrorsKeepTheirType(t *testing.T) {
	t.Parallel()

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		testApp, out, _ := SetupAppTest(t, writeInput(t, "input.txt", "R8,X5\nU7\n"), 1)

		err := testApp.Run(context.Background())
		var pe *wire.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Empty(t, out.String(), "nothing is reported when parsing fails")
	})

	t.Run("no crossing", func(t *testing.T) {
		t.Parallel()
		testApp, _, _ := SetupAppTest(t, writeInput(t, "input.txt", "U5,R5\nD5,L5\n"), 1)

		err := testApp.Run(context.Background())
		var nce *crossing.NoCrossingError
		require.ErrorAs(t, err, &nce)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		testApp, _, _ := SetupAppTest(t, filepath.Join(t.TempDir(), "nope.txt"), 1)

		err := testApp.Run(context.Background())
		var re *input.ReadError
		require.ErrorAs(t, err, &re)
	})
}

type staticLoader []wire.Wire

func (l staticLoader) Load(context.Context, string) ([]wire.Wire, error) { return l, nil }

func TestSolve_CustomLoader(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	codesA, err := wire.ParseLine("R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51")
	require.NoError(t, err)
	codesB, err := wire.ParseLine("U98,R91,D20,R16,D67,R40,U7,R15,U6,R7")
	require.NoError(t, err)

	cfg, err := NewConfig(Config{InputPath: "unused", LogFormat: "json", LogLevel: "error", WorkerCount: 2})
	require.NoError(t, err)
	testApp := NewApp(&bytes.Buffer{}, &SafeBuffer{}, cfg, staticLoader{{Name: "a", Codes: codesA}, {Name: "b", Codes: codesB}})

	// --- Act ---
	res, err := testApp.Solve(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 135, res.Central.Central)
	assert.Equal(t, 410, res.Wire.WireDistance)
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	res := crossing.Result{
		Central: crossing.Crossing{Point: geom.Point{X: 155, Y: 4}, Central: 159},
		Wire:    crossing.Crossing{Point: geom.Point{X: 158, Y: -12}, WireDistance: 610},
	}
	buf := &bytes.Buffer{}

	require.NoError(t, WriteReport(buf, res))
	assert.Equal(t, "Min. central distance of 159 at [155 4]\nMin. wire distance of 610 at [158 -12]\n", buf.String())
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	valid := Config{InputPath: "input.txt", LogFormat: "text", LogLevel: "warn", WorkerCount: 1}

	testCases := []struct {
		name      string
		mutate    func(c *Config)
		expectErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing input", mutate: func(c *Config) { c.InputPath = "" }, expectErr: "InputPath"},
		{name: "zero workers", mutate: func(c *Config) { c.WorkerCount = 0 }, expectErr: "worker count"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }, expectErr: "log-level"},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "yaml" }, expectErr: "log-format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tc.mutate(&cfg)
			got, err := NewConfig(cfg)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}

func TestNewLogger_RespectsLevelAndFormat(t *testing.T) {
	t.Parallel()

	buf := &SafeBuffer{}
	logger := newLogger("warn", "json", buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}
