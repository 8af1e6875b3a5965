package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedOptions() Options {
	return Options{
		RuntimeVersion: func() string { return "go1.24.0" },
		Platform:       func() (string, error) { return "Linux-6.1.0-x86_64", nil },
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fixedOptions()))

	want := "Hello from Development Studio!\n" +
		"Go version: go1.24.0\n" +
		"Platform: Linux-6.1.0-x86_64\n" +
		"Hello, Developer! Welcome to the Development Studio.\n" +
		"Squares of 1-5: [1, 4, 9, 16, 25]\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteHostEnvironment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Options{}))

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "Hello from Development Studio!", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Go version: go"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Platform: "), lines[2])
	assert.Equal(t, "Hello, Developer! Welcome to the Development Studio.", lines[3])
	assert.Contains(t, lines[4], "[1, 4, 9, 16, 25]")
}

func TestWritePlatformFailure(t *testing.T) {
	opts := fixedOptions()
	opts.Platform = func() (string, error) { return "", errors.New("uname unavailable") }

	var buf bytes.Buffer
	err := Write(&buf, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read platform")
	assert.Contains(t, err.Error(), "uname unavailable")

	out := buf.String()
	assert.Contains(t, out, "Hello from Development Studio!")
	assert.Contains(t, out, "Go version: go1.24.0")
	assert.NotContains(t, out, "Hello, Developer!")
	assert.NotContains(t, out, "Squares")
}

func TestWriteStyled(t *testing.T) {
	opts := fixedOptions()
	opts.Styled = true

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, opts))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Hello from Development Studio!")
	assert.Contains(t, out, "Hello, Developer! Welcome to the Development Studio.")
	assert.Contains(t, out, "[1, 4, 9, 16, 25]")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestWriteOutputError(t *testing.T) {
	err := Write(failingWriter{}, fixedOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}

func TestWriteLogsEachStep(t *testing.T) {
	var logs bytes.Buffer
	prevOut, prevLevel := logrus.StandardLogger().Out, logrus.GetLevel()
	logrus.SetOutput(&logs)
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fixedOptions()))

	out := logs.String()
	assert.Contains(t, out, `msg="writing banner"`)
	assert.Contains(t, out, "version=go1.24.0")
	assert.Contains(t, out, "platform=Linux-6.1.0-x86_64")
	assert.Contains(t, out, "name=Developer")
	assert.Contains(t, out, `msg="computed squares"`)
	assert.NotContains(t, buf.String(), "level=")
}
