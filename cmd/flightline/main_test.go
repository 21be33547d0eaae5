package main

import (
	"strings"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()
	expected := map[string]bool{
		"run":     false,
		"tools":   false,
		"history": false,
		"config":  false,
	}
	for _, sub := range cmd.Commands() {
		name := sub.Name()
		if _, ok := expected[name]; ok {
			expected[name] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Fatalf("expected %s subcommand to be registered", name)
		}
	}
}

func TestToolsListShowsCatalog(t *testing.T) {
	configPath, _, _ := writeTestConfig(t)

	stdout, _, err := executeCommand(t, "--config", configPath, "tools")
	if err != nil {
		t.Fatalf("tools returned error: %v", err)
	}
	if !strings.Contains(stdout, "Lidar Flightline Overlap") {
		t.Fatalf("expected display name in catalog output, got %q", stdout)
	}
	if !strings.Contains(stdout, "K Means Clustering") {
		t.Fatalf("expected all catalog tools listed, got %q", stdout)
	}
}

func TestToolsCheckReportsMissingBinaries(t *testing.T) {
	configPath, toolsDir, _ := writeTestConfig(t)
	installFakeTool(t, toolsDir, "exit 0\n")

	stdout, _, err := executeCommand(t, "--config", configPath, "tools", "check")
	if err == nil {
		t.Fatal("expected error while catalog tools are missing")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("unexpected error %v", err)
	}
	if !strings.Contains(stdout, "yes") || !strings.Contains(stdout, "no") {
		t.Fatalf("expected mixed availability in table, got %q", stdout)
	}
}

func TestHistoryCommandWithoutRecords(t *testing.T) {
	configPath, _, _ := writeTestConfig(t)

	stdout, _, err := executeCommand(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if !strings.Contains(stdout, "No invocations recorded yet.") {
		t.Fatalf("unexpected output %q", stdout)
	}
}
