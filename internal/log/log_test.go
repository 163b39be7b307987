package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestRegisterFlags(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, &f)

	if err := fs.Parse([]string{"--log-fmt=json", "--log-level=debug"}); err != nil {
		t.Fatal(err)
	}
	if f.Format != "json" || f.Level != "debug" {
		t.Errorf("flags = %+v", f)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		wantErr bool
	}{
		{name: "text", flags: Flags{Format: "text", Level: "info"}},
		{name: "json", flags: Flags{Format: "json", Level: "debug"}},
		{name: "logfmt", flags: Flags{Format: "logfmt", Level: "warn"}},
		{name: "defaults", flags: Flags{}},
		{name: "bad format", flags: Flags{Format: "xml"}, wantErr: true},
		{name: "bad level", flags: Flags{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&bytes.Buffer{}, tt.flags)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_JSONLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Flags{Format: "json", Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("dropped")
	logger.Warn("kept", "rows", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["msg"] != "kept" || rec["rows"] != float64(3) {
		t.Errorf("record = %v", rec)
	}
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := Init(&buf, Flags{Format: "json", Level: "error"})
	if err != nil {
		t.Fatal(err)
	}
	if slog.Default() != logger {
		t.Error("Init() did not install the logger as the slog default")
	}

	slog.Warn("dropped")
	slog.Error("kept")
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("got %d log lines, want 1: %q", got, buf.String())
	}

	if _, err := Init(&buf, Flags{Level: "loud"}); err == nil {
		t.Error("Init() with bad level succeeded")
	}
	if slog.Default() != logger {
		t.Error("failed Init() replaced the slog default")
	}
}
