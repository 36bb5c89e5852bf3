package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"garmindev/internal/config"
	"garmindev/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("CONNECTIQ_SDK", "")

	cfg := testsupport.NewConfig(t)
	cfg.Logging.Level = "error"

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n"+
			"[capture]\ndefault_device = %q\noutput_format = %q\napp_name = %q\n\n"+
			"[sdk]\nroot = %q\n\n"+
			"[history]\nenabled = %t\nretention_days = %d\n\n"+
			"[logging]\nformat = %q\nlevel = %q\n",
		cfg.Paths.DataDir,
		cfg.Paths.LogDir,
		cfg.Capture.DefaultDevice,
		cfg.Capture.OutputFormat,
		cfg.Capture.AppName,
		cfg.SDK.Root,
		cfg.History.Enabled,
		cfg.History.RetentionDays,
		cfg.Logging.Format,
		cfg.Logging.Level,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func writeSampleLog(t *testing.T, dir string) string {
	t.Helper()
	lines := strings.Join([]string{
		"[12:00:01] RENDER: Screen(260x260) Center(130,130)",
		"[12:00:01] RENDER: TimeLabel(10:09) Position(130,80) Font(LARGE) Color(0xFFFFFF)",
		"[12:00:01] RENDER: StepsLabel(8432 steps) Position(130,160) Font(SMALL) Color(0xAAAAAA)",
		"[12:00:02] RENDER: BatteryDot(78%) Position(200,40) Size(6.5) Color(0x00FF00)",
		"[12:00:02] LAYOUT: WatchFace(root)",
	}, "\n") + "\n"
	path := filepath.Join(dir, "debug.log")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
