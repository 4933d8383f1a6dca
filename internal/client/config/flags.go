package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/flagx"
)

// parseFlags applies the short command-line flags:
//
//	-a string   address and port of the backend server
//	-f string   path of the local SQLite file
//	-i int      per-request timeout, seconds
//	-l string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.LocalDBPath, "f", cfg.LocalDBPath, "local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
