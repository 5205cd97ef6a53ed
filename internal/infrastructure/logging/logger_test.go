package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	t.Setenv("DEBUG", "")

	type scenario struct {
		opts     Options
		expected logrus.Level
	}

	scenarios := []scenario{
		{Options{}, logrus.InfoLevel},
		{Options{Level: "warn"}, logrus.WarnLevel},
		{Options{Level: "nonsense"}, logrus.InfoLevel},
		{Options{Level: "error", Debug: true}, logrus.DebugLevel},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, New(s.opts).Logger.GetLevel())
	}
}

func TestNewDebugEnv(t *testing.T) {
	t.Setenv("DEBUG", "TRUE")

	assert.Equal(t, logrus.DebugLevel, New(Options{Level: "error"}).Logger.GetLevel())
}

func TestNewWritesToOut(t *testing.T) {
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer

	New(Options{Out: &buf}).Info("✅ Added translations to language_en.ts")

	assert.Contains(t, buf.String(), "Added translations to language_en.ts")
	assert.NotContains(t, buf.String(), "time=")
}
