package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/quotejournal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the quote journal API (default from Config)
//	-t string   path of the token file (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the quote journal API")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "path of the auth token file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
