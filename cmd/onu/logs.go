package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"onu-go/pkg/log"
)

// timeFormats are the absolute layouts accepted by --start/--end.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimeSpec accepts either a relative duration back from now ("1h",
// "30m") or an absolute timestamp in one of timeFormats.
func parseTimeSpec(spec string) (time.Time, error) {
	if d, err := time.ParseDuration(spec); err == nil {
		return time.Now().Add(-d), nil
	}
	for _, layout := range timeFormats {
		if ts, err := time.Parse(layout, spec); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time specification %q: use a relative duration (e.g. '1h') or an absolute timestamp (e.g. '2023-10-27T15:04:05Z')", spec)
}

var logsCommand = &cli.Command{
	Name:      "logs",
	Usage:     "retrieves JSON log entries from the run database",
	UsageText: "onu logs [options] [--last|--since|--between]",
	Description: `Retrieves events stored by previous runs. Defaults to the
most recent entries (--last); --since and --between select by event time.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dbfile",
			Aliases: []string{"f"},
			Usage:   "run database file under the app dir `FILE`",
			Value:   "onu.db",
		},
		&cli.BoolFlag{
			Name:  "last",
			Usage: "Mode: retrieve the most recent N entries (default)",
		},
		&cli.BoolFlag{
			Name:  "since",
			Usage: "Mode: retrieve entries since a start time",
		},
		&cli.BoolFlag{
			Name:  "between",
			Usage: "Mode: retrieve entries between a start and end time",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of entries for --last `NUMBER`",
			Value:   100,
		},
		&cli.StringFlag{
			Name:    "start",
			Aliases: []string{"s"},
			Usage:   "start time for --since/--between `TIME_SPEC`",
		},
		&cli.StringFlag{
			Name:    "end",
			Aliases: []string{"e"},
			Usage:   "end time for --between `TIME_SPEC`",
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"l"},
			Usage:   "max entries for --since/--between `NUMBER`",
			Value:   1000,
		},
	},
	Action: logsCmd,
}

func logsCmd(c *cli.Context) error {
	modes := 0
	for _, m := range []string{"last", "since", "between"} {
		if c.Bool(m) {
			modes++
		}
	}
	if modes > 1 {
		return cli.Exit("Error: only one of --last, --since, --between may be given.", 1)
	}

	if err := log.Init(c.String("dbfile")); err != nil {
		return cli.Exit(fmt.Sprintf("Error opening run database: %v", err), 1)
	}
	defer log.Close()

	var entries []log.Entry
	var err error
	switch {
	case c.Bool("since"):
		if !c.IsSet("start") {
			return cli.Exit("Error: --start is required for --since mode.", 1)
		}
		start, perr := parseTimeSpec(c.String("start"))
		if perr != nil {
			return cli.Exit(fmt.Sprintf("Error parsing start time: %v", perr), 1)
		}
		entries, err = log.Since(start, c.Int("limit"))
	case c.Bool("between"):
		if !c.IsSet("start") || !c.IsSet("end") {
			return cli.Exit("Error: --start and --end are required for --between mode.", 1)
		}
		start, perr := parseTimeSpec(c.String("start"))
		if perr != nil {
			return cli.Exit(fmt.Sprintf("Error parsing start time: %v", perr), 1)
		}
		end, perr := parseTimeSpec(c.String("end"))
		if perr != nil {
			return cli.Exit(fmt.Sprintf("Error parsing end time: %v", perr), 1)
		}
		entries, err = log.Between(start, end, c.Int("limit"))
	default:
		entries, err = log.LastN(c.Int("count"))
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error retrieving logs: %v", err), 1)
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No log entries found matching the criteria.")
		return nil
	}
	for _, e := range entries {
		fmt.Println(e.Event)
	}
	return nil
}
