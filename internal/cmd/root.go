package cmd

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/renato0307/lettercount/internal/logging"
	"github.com/renato0307/lettercount/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Count CountCmd `cmd:"" help:"Count letters in a repository's source files (default)" default:"withargs"`

	// Internal fields (not flags)
	logFile string `kong:"-"`
}

// AfterApply initializes logging after CLI parsing
func (c *CLI) AfterApply() error {
	logFile, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	c.logFile = logFile
	return nil
}

// LogFile returns the debug log path, or "" when logging is disabled
func (c *CLI) LogFile() string {
	return c.logFile
}

// ReportError writes a failed run to w: the message first, then the
// diagnostic trace with the stack recorded where the error was created.
func ReportError(w io.Writer, err error, logFile string) {
	logging.Logger.Error("Run failed", "error", err)

	fmt.Fprintln(w, ui.RenderError(err))
	fmt.Fprintf(w, "\nDiagnostic trace:\n%+v\n", err)
	if logFile != "" {
		fmt.Fprintf(w, "\nDebug log: %s\n", logFile)
	}
}
