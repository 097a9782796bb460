package main

import (
	"flag"
	"os"
	"testing"

	"github.com/golang/glog"
)

func flagValue(t *testing.T, name string) string {
	t.Helper()
	f := flag.Lookup(name)
	if f == nil {
		t.Fatalf("Expected glog flag -%s to be registered", name)
	}
	return f.Value.String()
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	if err := setupLogging(false); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	if v := flagValue(t, "v"); v != "0" {
		t.Errorf("Expected verbosity 0, got %s", v)
	}
	if v := flagValue(t, "logtostderr"); v != "false" {
		t.Errorf("Expected logtostderr false, got %s", v)
	}
	if v := flagValue(t, "alsologtostderr"); v != "false" {
		t.Errorf("Expected alsologtostderr false, got %s", v)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := setupLogging(true); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	if v := flagValue(t, "v"); v != "2" {
		t.Errorf("Expected verbosity 2, got %s", v)
	}
	if dir := flagValue(t, "log_dir"); dir != logDir {
		t.Errorf("Expected log_dir %q, got %q", logDir, dir)
	}
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Fatal("Expected logs directory to be created")
	}

	glog.Info("Test log message")
	glog.Flush()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	if len(entries) == 0 {
		t.Error("Expected log file in logs directory")
	}
}
