package config

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("KP_TEST_KEY", "custom")
	defer os.Unsetenv("KP_TEST_KEY")

	if got := getEnv("KP_TEST_KEY", "default"); got != "custom" {
		t.Errorf("getEnv set = %q, want custom", got)
	}
	if got := getEnv("KP_TEST_KEY_UNSET", "default"); got != "default" {
		t.Errorf("getEnv unset = %q, want default", got)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
			SSLMode:  "disable",
		},
	}

	want := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestLoadMissingDBPassword(t *testing.T) {
	original := os.Getenv("DB_PASSWORD")
	defer func() {
		if original != "" {
			os.Setenv("DB_PASSWORD", original)
		}
	}()
	os.Unsetenv("DB_PASSWORD")

	if _, err := Load(); err == nil {
		t.Error("Load without DB_PASSWORD should fail")
	}
}
