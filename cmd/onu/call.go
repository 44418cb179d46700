package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"onu-go/pkg/builtins"
	"onu-go/pkg/runtime"
	"onu-go/pkg/value"
)

var callCommand = &cli.Command{
	Name:        "call",
	Usage:       "invokes a named builtin with literal arguments",
	UsageText:   "onu call <builtin> [args...]",
	Description: `Invokes one builtin by its surface name, e.g. "onu call added-to 1 2" or "onu call joined-with foo bar". Integer, float and true/false literals are parsed; everything else is text.`,
	Action:      callCmd,
}

func callCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Error: a builtin name is required.", 1)
	}
	name := c.Args().First()
	args := make([]value.Value, 0, c.NArg()-1)
	for _, raw := range c.Args().Tail() {
		args = append(args, parseLiteral(raw))
	}

	env := runtime.NewStdEnvironment()
	res, err := builtins.Default().Call(name, args, env)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	fmt.Println(res)
	return nil
}

// parseLiteral maps a command-line token to a runtime value: integer and
// float literals first, then booleans, tuples in (a, b) form, and text
// as the fallback.
func parseLiteral(raw string) value.Value {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value.I64(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return value.F64(f)
	}
	switch raw {
	case "true":
		return value.Boolean(true)
	case "false":
		return value.Boolean(false)
	}
	if strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(raw, "("), ")")
		parts := strings.Split(inner, ",")
		elems := make([]value.Value, 0, len(parts))
		for _, p := range parts {
			elems = append(elems, parseLiteral(strings.TrimSpace(p)))
		}
		return value.Tuple(elems...)
	}
	return value.Text(raw)
}
