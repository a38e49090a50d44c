package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own LETTERCOUNT_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
}

// NewTestEnvironment creates an isolated test environment with a temp LETTERCOUNT_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out LETTERCOUNT_* and GITHUB_* variables, then sets
// LETTERCOUNT_HOME to the temp directory and disables debug logging.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "LETTERCOUNT_") || strings.HasPrefix(key, "GITHUB_") {
			continue
		}
		if _, ok := e.extraEnv[key]; ok {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"LETTERCOUNT_HOME="+e.Home,
		"LETTERCOUNT_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// LogDir returns where debug logs land for this environment.
func (e *TestEnvironment) LogDir() string {
	return filepath.Join(e.Home, "logs")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}
