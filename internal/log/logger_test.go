package log_test

import (
	"bytes"
	"testing"

	"facet/internal/log"

	"github.com/stretchr/testify/assert"
)

func TestLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(&bytes.Buffer{})

	log.Info("hello %s", "world")
	assert.Contains(t, buf.String(), "hello world")

	buf.Reset()
	log.Warnf("count=%d", 3)
	assert.Contains(t, buf.String(), "count=3")
}

func TestDebugGate(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(&bytes.Buffer{})

	log.SetDebug(false)
	log.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	log.SetDebug(true)
	defer log.SetDebug(false)
	log.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(&bytes.Buffer{})

	log.LogWithFields(log.F("file", "pets.csv"), log.F("rows", 42)).Info("loaded")

	out := buf.String()
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "pets.csv")
	assert.Contains(t, out, "42")
}
