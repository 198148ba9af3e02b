package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
postgres:
  dsn: postgres://other:other@db:5432/atay
moderation:
  page_size: 25
media:
  presign_ttl: 30m
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Postgres.DSN != "postgres://other:other@db:5432/atay" {
		t.Fatalf("unexpected postgres dsn: %s", cfg.Postgres.DSN)
	}
	if cfg.Moderation.PageSize != 25 {
		t.Fatalf("unexpected moderation page size: %d", cfg.Moderation.PageSize)
	}
	if cfg.Media.PresignTTL.String() != "30m0s" {
		t.Fatalf("unexpected presign ttl: %s", cfg.Media.PresignTTL)
	}

	if cfg.Log.Level != "debug" {
		t.Fatalf("log level default should stay debug")
	}
	if cfg.S3.Bucket != "atay-media" {
		t.Fatalf("s3 bucket default should stay atay-media")
	}
	if cfg.Auth.SessionTTL.String() != "12h0m0s" {
		t.Fatalf("session ttl default should stay 12h: %s", cfg.Auth.SessionTTL)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Moderation.PageSize != 10 {
		t.Fatalf("unexpected default page size: %d", cfg.Moderation.PageSize)
	}
	if cfg.Media.MaxUploadBytes != 5<<20 {
		t.Fatalf("unexpected default upload cap: %d", cfg.Media.MaxUploadBytes)
	}
}

func TestEnvOverridesWinOverYAML(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("MOD_PAGE_SIZE", "50")
	t.Setenv("TG_NOTIFY_CHAT_ID", "-100123456")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("env override lost: %s", cfg.HTTP.Addr)
	}
	if cfg.Moderation.PageSize != 50 {
		t.Fatalf("env override lost: %d", cfg.Moderation.PageSize)
	}
	if cfg.Notify.TelegramChatID != -100123456 {
		t.Fatalf("env override lost: %d", cfg.Notify.TelegramChatID)
	}
}

func TestLoadRejectsMalformedEnvInt(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MOD_PAGE_SIZE", "lots")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for malformed MOD_PAGE_SIZE")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"POSTGRES_DSN",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"S3_ENDPOINT",
		"S3_ACCESS_KEY",
		"S3_SECRET_KEY",
		"S3_BUCKET",
		"S3_USE_SSL",
		"JWT_SECRET",
		"JWT_ACCESS_TTL",
		"SESSION_TTL",
		"TG_NOTIFY_TOKEN",
		"TG_NOTIFY_CHAT_ID",
		"MOD_PAGE_SIZE",
		"MEDIA_MAX_UPLOAD_BYTES",
		"MEDIA_PRESIGN_TTL",
	} {
		t.Setenv(key, "")
	}
}
