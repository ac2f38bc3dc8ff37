package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectConfig_WalksUpward(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeConfig(t, tmpDir, ".markdownlint.json", `{}`)

	deepDir := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(deepDir, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectConfig(context.Background(), deepDir)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if got != want {
		t.Errorf("FindProjectConfig() = %q, want %q", got, want)
	}
}

func TestFindProjectConfig_PrefersJSONCOverJSON(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".markdownlint.json", `{}`)
	want := writeConfig(t, tmpDir, ".markdownlint.jsonc", `{}`)

	got, err := FindProjectConfig(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if got != want {
		t.Errorf("FindProjectConfig() = %q, want jsonc preferred", got)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// Config above the VCS root must not be found.
	writeConfig(t, tmpDir, ".markdownlint.jsonc", `{}`)

	repoDir := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repoDir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectConfig(context.Background(), repoDir)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if got != "" {
		t.Errorf("FindProjectConfig() = %q, want empty (search stops at VCS root)", got)
	}
}

func TestFindProjectConfig_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindProjectConfig(ctx, t.TempDir())
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestIsYAMLConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		yaml bool
		json bool
	}{
		{".markdownlint.yaml", true, false},
		{".markdownlint.yml", true, false},
		{".markdownlint.jsonc", false, true},
		{".markdownlint.json", false, true},
		{"config.txt", false, false},
	}

	for _, tt := range tests {
		if got := IsYAMLConfig(tt.path); got != tt.yaml {
			t.Errorf("IsYAMLConfig(%q) = %v, want %v", tt.path, got, tt.yaml)
		}
		if got := IsJSONConfig(tt.path); got != tt.json {
			t.Errorf("IsJSONConfig(%q) = %v, want %v", tt.path, got, tt.json)
		}
	}
}

func TestEnvPolicy(t *testing.T) {
	tests := []struct {
		value string
		want  UnknownRulePolicy
	}{
		{"error", UnknownRuleError},
		{"strict", UnknownRuleError},
		{"warn", UnknownRuleWarn},
		{"garbage", UnknownRuleWarn},
		{"", UnknownRuleWarn},
	}

	for _, tt := range tests {
		t.Run("value_"+tt.value, func(t *testing.T) {
			t.Setenv(EnvUnknownRules, tt.value)
			if got := envPolicy(UnknownRuleWarn); got != tt.want {
				t.Errorf("envPolicy() = %v, want %v", got, tt.want)
			}
		})
	}
}
