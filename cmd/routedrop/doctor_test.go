package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestDoctorPassesOnCleanSetup(t *testing.T) {
	cfgPath := writeTestConfig(t)
	addTab(t, cfgPath, "Good", t.TempDir())

	cmd := newDoctorCmd()
	cmd.SetArgs([]string{"-c", cfgPath})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("doctor: %v", err)
	}
}

func TestDoctorPassesBeforeFirstSave(t *testing.T) {
	cfgPath := writeTestConfig(t)

	cmd := newDoctorCmd()
	cmd.SetArgs([]string{"-c", cfgPath})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("doctor on fresh setup: %v", err)
	}
}

func TestDoctorFlagsBadDestinations(t *testing.T) {
	cfgPath := writeTestConfig(t)
	addTab(t, cfgPath, "Lost", filepath.Join(t.TempDir(), "gone"))

	cmd := newTabsCmd()
	cmd.SetArgs([]string{"-c", cfgPath, "add", "Blank"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("add tab: %v", err)
	}

	doctor := newDoctorCmd()
	doctor.SetArgs([]string{"-c", cfgPath})
	doctor.SetOut(&bytes.Buffer{})
	doctor.SetErr(&bytes.Buffer{})
	err := doctor.Execute()
	if err == nil {
		t.Fatalf("expected doctor to report problems")
	}
	if !strings.Contains(err.Error(), "2 problems") {
		t.Fatalf("expected 2 problems, got %v", err)
	}
}
