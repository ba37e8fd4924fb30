package cli

import (
	"bytes"
	"io"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	if c.Logger == nil {
		t.Fatal("New() should create a logger")
	}

	c.Logger.Info("three networks ready")
	if buf.Len() == 0 {
		t.Error("logger should write to the given writer")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message should be filtered at info level")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message should pass at debug level")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}

	for _, name := range []string{"run", "graph", "metrics", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}

	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("root command missing --verbose flag")
	}
}
