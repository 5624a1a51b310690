package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportImportCommandsRoundTrip(t *testing.T) {
	cfgPath := writeTestConfig(t)
	addTab(t, cfgPath, "Papers", t.TempDir())
	addTab(t, cfgPath, "Music", t.TempDir())

	exportPath := filepath.Join(t.TempDir(), "tabs.json")
	cmd := newExportCmd()
	out := &bytes.Buffer{}
	cmd.SetArgs([]string{"-c", cfgPath, exportPath})
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out.String(), exportPath) {
		t.Fatalf("expected export notice, got %q", out.String())
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"tabs"`) {
		t.Fatalf("expected tabs array in export, got %s", data)
	}

	otherCfg := writeTestConfig(t)
	cmd = newImportCmd()
	out = &bytes.Buffer{}
	cmd.SetArgs([]string{"-c", otherCfg, exportPath, "--mode", "replace"})
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out.String(), "imported 2 tabs, 2 total") {
		t.Fatalf("expected import notice, got %q", out.String())
	}

	doc := loadStateDoc(t, otherCfg)
	if len(doc.Tabs) != 2 || doc.Tabs[0].Name != "Papers" || doc.Tabs[1].Name != "Music" {
		t.Fatalf("unexpected imported tabs: %+v", doc.Tabs)
	}
}

func TestExportSelectedTabFlag(t *testing.T) {
	cfgPath := writeTestConfig(t)
	addTab(t, cfgPath, "Keep", t.TempDir())
	addTab(t, cfgPath, "Skip", t.TempDir())

	exportPath := filepath.Join(t.TempDir(), "keep.json")
	cmd := newExportCmd()
	cmd.SetArgs([]string{"-c", cfgPath, exportPath, "--tab", "Keep"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "Keep") || strings.Contains(string(data), "Skip") {
		t.Fatalf("expected only Keep in export, got %s", data)
	}
}

func TestImportRejectsUnknownMode(t *testing.T) {
	cfgPath := writeTestConfig(t)

	cmd := newImportCmd()
	cmd.SetArgs([]string{"-c", cfgPath, "whatever.json", "--mode", "sideload"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown import mode")
	}
}
