package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func resetViper() {
	viper.Reset()
}

func TestLoadMissingRequiredFails(t *testing.T) {
	resetViper()
	os.Unsetenv("DL_DATABASE_URL")
	os.Unsetenv("DL_SECRET_KEY")
	os.Unsetenv("DL_BUCKET_NAME")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with no required env vars set, want error")
	}
}

func TestLoadDefaults(t *testing.T) {
	resetViper()
	os.Setenv("DL_DATABASE_URL", "postgres://localhost/doculens")
	os.Setenv("DL_SECRET_KEY", "secretkey")
	os.Setenv("DL_BUCKET_NAME", "dl-bucket")
	defer os.Unsetenv("DL_DATABASE_URL")
	defer os.Unsetenv("DL_SECRET_KEY")
	defer os.Unsetenv("DL_BUCKET_NAME")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PoolSize != 8 {
		t.Errorf("PoolSize = %d, want 8", cfg.PoolSize)
	}
	if cfg.CoordinatorPort != 2500 {
		t.Errorf("CoordinatorPort = %d, want 2500", cfg.CoordinatorPort)
	}
	if cfg.InterfacePort != 2505 {
		t.Errorf("InterfacePort = %d, want 2505", cfg.InterfacePort)
	}
}
