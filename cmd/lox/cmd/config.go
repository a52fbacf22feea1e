package cmd

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// replConfig is the optional `.loxrc` file the REPL honors, per
// SPEC_FULL.md's AMBIENT STACK §2 ("Configuration"). Its absence is not an
// error; every field has a sensible zero/default value.
type replConfig struct {
	Prompt          string `yaml:"prompt"`
	EchoExpressions bool   `yaml:"echoExpressions"`
	HistoryLimit    int    `yaml:"historyLimit"`
}

func defaultReplConfig() replConfig {
	return replConfig{
		Prompt:          "> ",
		EchoExpressions: true,
		HistoryLimit:    1000,
	}
}

// loadReplConfig reads `~/.loxrc` if present, overlaying it on the
// defaults. A missing file is silently ignored; a malformed one is
// reported to stderr and the defaults are used, since a broken config
// shouldn't prevent `lox` from starting.
func loadReplConfig() replConfig {
	cfg := defaultReplConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}

	data, err := os.ReadFile(filepath.Join(home, ".loxrc"))
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		os.Stderr.WriteString("lox: ignoring malformed ~/.loxrc: " + err.Error() + "\n")
		return defaultReplConfig()
	}
	return cfg
}
