package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Rank a five to seven card hand"`
	Deal     DealCmd          `cmd:"" help:"Seat a table and deal preflop"`
	Simulate SimulateCmd      `cmd:"" help:"Deal random hands and tally categories"`
	History  HistoryCmd       `cmd:"" help:"Show a PHH session file"`
}

// Globals are flags shared by every command.
type Globals struct {
	Debug     bool   `help:"Enable debug logging"`
	LogFormat string `help:"Log format" enum:"text,json,logfmt" default:"text"`
	NoColor   bool   `help:"Disable colored output" env:"NO_COLOR"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em rules engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		disableColor()
	}
	env := &runEnv{
		out:    os.Stdout,
		logger: newLogger(os.Stderr, cli.Globals),
		clock:  quartz.NewReal(),
		debug:  cli.Debug,
	}
	err := ctx.Run(env)
	ctx.FatalIfErrorf(err)
}
