// Package harness provides utilities for integration testing the lettercount CLI.
// It handles binary compilation, environment isolation, command execution
// and a fake GitHub contents API.
//
// Environment variables managed:
//   - LETTERCOUNT_HOME: Isolated per test (temp directory)
//   - LETTERCOUNT_DEBUG: Disabled to reduce noise
//   - GITHUB_*: Removed so the developer's credentials never leak into a run
package harness
