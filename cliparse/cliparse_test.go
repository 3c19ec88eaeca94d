// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("VOTE_RETRY_ATTEMPTS", "5")

	cfg, err := ParseFlags([]string{"-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.RetryAttempts != 5 {
		t.Errorf("expected 5 retry attempts, got %d", cfg.RetryAttempts)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("SHARE_BASE_URL", "")
	t.Setenv("VOTE_RETRY_ATTEMPTS", "")

	cfg, err := ParseFlags([]string{"-d", "postgres://localhost/tally", "-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 2022 {
		t.Errorf("expected default port 2022, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected default postgres, got %q", cfg.DatabaseType)
	}
	if cfg.ShareBaseURL != "http://localhost:5173" {
		t.Errorf("unexpected default share URL %q", cfg.ShareBaseURL)
	}
	if cfg.RetryAttempts != 3 {
		t.Errorf("expected 3 retry attempts, got %d", cfg.RetryAttempts)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	tests := []struct {
		name string
		args []string
	}{
		{"missing database url", []string{"-env", ""}},
		{"unknown database type", []string{"-d", "x", "-t", "mysql", "-env", ""}},
		{"port out of range", []string{"-d", "x", "-p", "70000", "-env", ""}},
		{"negative retries", []string{"-d", "x", "-retries", "-1", "-env", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("SHARE_BASE_URL", "https://from-process.example")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_URL=file:from-env-file.db\nSHARE_BASE_URL=https://from-file.example\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("DATABASE_URL") })

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "file:from-env-file.db" {
		t.Errorf("expected DATABASE_URL from file, got %q", cfg.DatabaseURL)
	}
	// Process environment wins over the file
	if cfg.ShareBaseURL != "https://from-process.example" {
		t.Errorf("expected process SHARE_BASE_URL, got %q", cfg.ShareBaseURL)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	_, err := ParseFlags([]string{"-d", "file:test.db", "-env", filepath.Join(t.TempDir(), "nope.env")})
	if err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}
func TestParseFlags_SQLiteOptIn(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "")

	cfg, err := ParseFlags([]string{"-t", "sqlite", "-d", "file:tally.db", "-env", ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}

	t.Setenv("DATABASE_TYPE", "sqlite")
	cfg, err = ParseFlags([]string{"-d", "file:tally.db", "-env", ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite from env, got %q", cfg.DatabaseType)
	}
}
