package config

import (
	"flag"
	"os"

	"github.com/hacksnooze/hacksnooze-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the story service (default from Config)
//	-s string   path of the local session database (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the story service")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "path of the session database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
