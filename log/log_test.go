package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	l := logrus.New()
	SetupLogger(l, false)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	SetupLogger(l, true)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestNullLoggerDiscards(t *testing.T) {
	l := NullLogger()
	buf := &bytes.Buffer{}
	l.Info("before")
	assert.Zero(t, buf.Len())

	l.SetOutput(buf)
	l.Info("after")
	assert.Contains(t, buf.String(), "after")
}
