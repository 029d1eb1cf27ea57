package commands

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		flag   string
		want   string
		wantOk bool
	}{
		{name: "separate value", args: []string{"--network", "mainnet"}, flag: "--network", want: "mainnet", wantOk: true},
		{name: "equals form", args: []string{"--network=mainnet"}, flag: "--network", want: "mainnet", wantOk: true},
		{name: "missing", args: []string{"--category", "Tokens"}, flag: "--network", wantOk: false},
		{name: "flag at end without value", args: []string{"--network"}, flag: "--network", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := flagValue(tt.args, tt.flag)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("flagValue(%v, %q) = (%q, %v), want (%q, %v)",
					tt.args, tt.flag, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestPositionalArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "plain", args: []string{"old.md", "new.md"}, want: []string{"old.md", "new.md"}},
		{name: "flags skipped with values", args: []string{"--config", "c.yaml", "old.md", "--json", "new.md"}, want: []string{"old.md", "new.md"}},
		{name: "equals flag keeps following arg", args: []string{"--config=c.yaml", "old.md"}, want: []string{"old.md"}},
		{name: "empty", args: []string{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := positionalArgs(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("positionalArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestFilterParams(t *testing.T) {
	p := filterParams([]string{"--network", "mainnet", "--category", "Tokens", "--search", "gov"})
	if p.Network != "mainnet" || p.Category != "Tokens" || p.Query != "gov" {
		t.Errorf("filterParams = %+v", p)
	}
}

func TestParseLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cb.log")
	content := "2025-11-27 14:10:00 INFO monitor started\n" +
		"2025-11-27 14:11:57 INFO check completed added=2 removed=0 duration=120ms\n" +
		"2025-11-27 14:12:00 INFO entry added entry=Tokens/GovToken\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}

	_, lastCheck, added := ParseLogFile(path, 20)
	if lastCheck.IsZero() {
		t.Fatalf("Last check time not parsed")
	}
	if got := lastCheck.Format("2006-01-02 15:04:05"); got != "2025-11-27 14:11:57" {
		t.Errorf("Last check = %s", got)
	}
	if added != 2 {
		t.Errorf("Added = %d, want 2", added)
	}
}

func TestParseLogFileMissing(t *testing.T) {
	lines, lastCheck, added := ParseLogFile(filepath.Join(t.TempDir(), "nope.log"), 20)
	if !lastCheck.IsZero() || added != 0 {
		t.Errorf("Missing log file returned (%v, %d)", lastCheck, added)
	}
	if len(lines) == 0 {
		t.Errorf("Expected placeholder lines for missing log file")
	}
}

func TestHasFlag(t *testing.T) {
	if !hasFlag([]string{"--json"}, "--json") {
		t.Errorf("hasFlag missed present flag")
	}
	if hasFlag([]string{"--jsonx"}, "--json") {
		t.Errorf("hasFlag matched a prefix")
	}
}
