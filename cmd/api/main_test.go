package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestScheduleCmd_PrintsClassifiedSchedule(t *testing.T) {
	cmd := scheduleCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dob", "2024-01-01", "--today", "2024-02-12"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 22 {
		t.Fatalf("expected header + 21 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "BCG") || !strings.Contains(lines[1], "Missed") {
		t.Fatalf("unexpected BCG row %q", lines[1])
	}
	if !strings.Contains(out.String(), "2024-02-12  Due") {
		t.Fatalf("expected 42-day doses due today, got:\n%s", out.String())
	}
}

func TestScheduleCmd_RejectsBadDOB(t *testing.T) {
	cmd := scheduleCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dob", "01/01/2024"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for bad dob")
	}
}

func TestCatalogCmd(t *testing.T) {
	cmd := catalogCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Td-TT") || !strings.Contains(out.String(), "3650") {
		t.Fatalf("catalog output missing entries:\n%s", out.String())
	}
}
