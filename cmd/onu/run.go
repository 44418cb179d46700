package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"onu-go/pkg/host"
	"onu-go/pkg/log"
	"onu-go/pkg/runtime"
)

var runCommand = &cli.Command{
	Name:        "run",
	Usage:       "runs a compiled guest module with the runtime linked in",
	UsageText:   "onu run [options] <module.wasm>",
	Description: `Instantiates the guest with the Ọ̀nụ runtime host module (and WASI unless disabled) and invokes its entry function.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "entry",
			Usage: "entry export to invoke `NAME`",
		},
		&cli.StringFlag{
			Name:  "module-name",
			Usage: "import module name the guest resolves runtime symbols from `NAME`",
		},
		&cli.StringFlag{
			Name:  "alloc",
			Usage: "guest allocator export used for returned strings `NAME`",
		},
		&cli.BoolFlag{
			Name:  "no-wasi",
			Usage: "do not instantiate wasi_snapshot_preview1",
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "log to the console instead of the run database",
		},
	},
	Action: runCmd,
}

func runCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Error: exactly one guest module path is required.", 1)
	}

	cfg, err := host.LoadConfig()
	if err != nil {
		return cli.Exit("Error: failed to load configuration: "+err.Error(), 1)
	}
	if c.IsSet("entry") {
		cfg.Entry = c.String("entry")
	}
	if c.IsSet("module-name") {
		cfg.ModuleName = c.String("module-name")
	}
	if c.IsSet("alloc") {
		cfg.AllocExport = c.String("alloc")
	}
	if c.IsSet("no-wasi") {
		cfg.EnableWASI = !c.Bool("no-wasi")
	}
	if c.IsSet("console") {
		cfg.ConsoleLog = c.Bool("console")
	}

	if cfg.ConsoleLog {
		log.SetConsole()
	} else {
		log.MustInit(cfg.LogDB)
		defer log.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env := runtime.NewStdEnvironment()
	if err := host.Run(ctx, c.Args().First(), env, cfg); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
