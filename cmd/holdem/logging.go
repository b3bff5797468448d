package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// runEnv is what every command's Run receives.
type runEnv struct {
	out    io.Writer
	logger *log.Logger
	clock  quartz.Clock
	debug  bool
}

func newLogger(w io.Writer, g Globals) *log.Logger {
	level := log.InfoLevel
	if g.Debug {
		level = log.DebugLevel
	}
	formatter := log.TextFormatter
	switch g.LogFormat {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// setLevel applies a level name from a config file unless --debug was given.
func setLevel(logger *log.Logger, name string, debug bool) {
	if debug {
		return
	}
	if level, err := log.ParseLevel(name); err == nil {
		logger.SetLevel(level)
	}
}
