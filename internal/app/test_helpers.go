package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App reading inputPath, with debug logging captured
// in a SafeBuffer. Set CW_TEST_LOGS=true to print the logs after each test.
func SetupAppTest(t *testing.T, inputPath string, workers int) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	cfg, err := NewConfig(Config{
		InputPath:   inputPath,
		LogFormat:   "text",
		LogLevel:    "debug",
		WorkerCount: workers,
	})
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(out, logBuffer, cfg, nil)

	t.Cleanup(func() {
		if os.Getenv("CW_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
