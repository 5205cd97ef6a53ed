package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options controls logger construction.
type Options struct {
	Level string
	Debug bool
	Out   io.Writer
}

// New returns a logger writing plain progress lines to Out (stdout by default).
func New(opts Options) *logrus.Entry {
	log := logrus.New()
	log.SetLevel(level(opts))
	if opts.Out != nil {
		log.SetOutput(opts.Out)
	} else {
		log.SetOutput(os.Stdout)
	}
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp:       !opts.Debug,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	}
	return logrus.NewEntry(log)
}

func level(opts Options) logrus.Level {
	if opts.Debug || strings.EqualFold(os.Getenv("DEBUG"), "TRUE") {
		return logrus.DebugLevel
	}
	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
