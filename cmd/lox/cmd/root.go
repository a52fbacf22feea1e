package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

// exitStatus is set by runScript before it returns, and read by Execute.
// cobra's own error-return path only distinguishes "failed" from
// "succeeded", but spec.md §6 fixes three distinct non-zero codes
// (64 usage, 65 static scan/parse/resolve, 70 runtime), so the command records the
// precise code itself rather than losing it to a bare non-nil error.
var exitStatus int

const (
	exitOK          = 0
	exitUsageError  = 64
	exitDataError   = 65
	exitSoftwareErr = 70
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "A tree-walking interpreter for Lox",
	Long: `lox runs programs written in Lox, the small dynamic language from
Crafting Interpreters.

Run a script:
  lox script.lox

Start an interactive session:
  lox`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	RunE:          runScript,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed program as a parenthesized tree and exit")
}

// Execute runs the root command and returns the process exit code fixed by
// spec.md §6: 0 on success, 64 on a usage error or an unreadable script,
// 65 on a scan, parse or resolve error, 70 on an unhandled runtime error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if exitStatus == exitOK {
			exitStatus = 1
		}
		return exitStatus
	}
	return exitStatus
}
