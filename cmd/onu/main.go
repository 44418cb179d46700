package main

import (
	stdlog "log"
	"os"

	"github.com/urfave/cli/v2"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "onu",
		Usage:   "Ọ̀nụ runtime host: run compiled guests, call builtins, inspect run logs",
		Version: Version,
		Commands: []*cli.Command{
			runCommand,
			callCommand,
			logsCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		stdlog.Fatalf("%v", err)
	}
}
