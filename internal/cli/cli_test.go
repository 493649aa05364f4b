package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/crossedwires/internal/app"
	"github.com/specialistvlad/crossedwires/internal/crossing"
	"github.com/specialistvlad/crossedwires/internal/input"
	"github.com/specialistvlad/crossedwires/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-input", "/test/input.txt",
				"--log-level=DEBUG",
				"--log-format=json",
				"--workers=8",
			},
			expectedConfig: &app.Config{
				InputPath:   "/test/input.txt",
				LogLevel:    "debug",
				LogFormat:   "json",
				WorkerCount: 8,
			},
		},
		{
			name: "Shorthand flag and defaults",
			args: []string{"-i", "/short/circuit.hcl"},
			expectedConfig: &app.Config{
				InputPath:   "/short/circuit.hcl",
				LogLevel:    "warn",
				LogFormat:   "text",
				WorkerCount: 1,
			},
		},
		{
			name: "Positional argument for path",
			args: []string{"/positional/input.txt"},
			expectedConfig: &app.Config{
				InputPath:   "/positional/input.txt",
				LogLevel:    "warn",
				LogFormat:   "text",
				WorkerCount: 1,
			},
		},
		{
			name: "No path falls back to input.txt",
			args: []string{},
			expectedConfig: &app.Config{
				InputPath:   app.DefaultInputPath,
				LogLevel:    "warn",
				LogFormat:   "text",
				WorkerCount: 1,
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:", "Expected help text to be printed")
			},
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--log-level=foo", "/path"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--log-format=yaml", "/path"},
			expectErr: true,
		},
		{
			name:      "Zero workers returns an error",
			args:      []string{"--workers=0", "/path"},
			expectErr: true,
		},
		{
			name:      "Two positional paths return an error",
			args:      []string{"/a", "/b"},
			expectErr: true,
		},
		{
			name:      "Unknown flag returns an error",
			args:      []string{"--nope"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "Expected error to be of type ExitError")
				require.Equal(t, ExitUsage, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"exit error", &ExitError{Code: 7, Message: "x"}, 7},
		{"parse error", fmt.Errorf("failed to load wires: %w", &wire.ParseError{Code: "X5"}), ExitParse},
		{"decode error", &input.DecodeError{Path: "c.hcl", Err: errors.New("bad")}, ExitParse},
		{"read error", fmt.Errorf("wrap: %w", &input.ReadError{Path: "in.txt", Err: os.ErrNotExist}), ExitInput},
		{"no crossing", fmt.Errorf("evaluation failed: %w", &crossing.NoCrossingError{Wires: 2, Pairs: 1}), ExitNoCrossing},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
