package integration_test

import (
	"testing"

	"github.com/renato0307/lettercount/test/integration/harness"
)

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "lettercount dev")
}

func TestHelp(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "count", "--help")

	harness.AssertSuccess(t, result)
	for _, flag := range []string{"--workers", "--token", "--source", "--format", "--extensions", "--debug"} {
		harness.AssertStdoutContains(t, result, flag)
	}
}
