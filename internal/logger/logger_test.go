package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, "DEBUG", ParseLevel("debug").String())
	require.Equal(t, "WARN", ParseLevel("Warning").String())
	require.Equal(t, "ERROR", ParseLevel("err").String())
	require.Equal(t, "INFO", ParseLevel("nonsense").String())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "warn"}, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	require.NotContains(t, out, "hidden 1")
	require.Contains(t, out, "shown 2")
	require.Contains(t, out, "logger_test.go")
}

func TestTagFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"History"}}, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	DebugTagf("history", "dropped")
	DebugTagf("hashtag", "kept")
	Debugf("untagged")

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "kept")
	require.Contains(t, out, "tag=hashtag")
	require.Contains(t, out, "untagged")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"style"}}, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Debugf("untagged")
	DebugTagf("list", "other tag")
	InfoTagf("style", "wanted")

	out := buf.String()
	require.NotContains(t, out, "untagged")
	require.NotContains(t, out, "other tag")
	require.Contains(t, out, "wanted")
}

func TestPackageAndFileFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &buf)
	Infof("from logger package")
	require.NotContains(t, buf.String(), "from logger package")

	buf.Reset()
	Init(Config{LogLevel: "debug", EnabledFiles: []string{"other.go"}}, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })
	Infof("from test file")
	require.NotContains(t, buf.String(), "from test file")
}

func TestOpenOutput(t *testing.T) {
	w, c, err := OpenOutput("")
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NoError(t, c.Close())

	path := filepath.Join(t.TempDir(), "logs", "postfmt.log")
	w, c, err = OpenOutput(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.FileExists(t, path)
}
