package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvWebhook, "https://hooks.slack.example/T000/B000/XXX")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if config.WebhookURL != "https://hooks.slack.example/T000/B000/XXX" {
		t.Errorf("webhook URL: got %q", config.WebhookURL)
	}
	if config.Timeout != DefaultTimeout {
		t.Errorf("timeout: got %v, want %v", config.Timeout, DefaultTimeout)
	}
}

func TestConfigFromEnv_Missing(t *testing.T) {
	t.Setenv(EnvWebhook, "")

	_, err := ConfigFromEnv()
	if err == nil {
		t.Fatal("expected error for missing webhook, got nil")
	}

	var missing *MissingConfigError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingConfigError, got %T: %v", err, err)
	}
	if missing.Key != EnvWebhook {
		t.Errorf("key: got %q, want %q", missing.Key, EnvWebhook)
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slack.yaml")
	content := "username: taobot\nicon_emoji: \":yin_yang:\"\nchannel: \"#quotes\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing options file: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if opts.Username != "taobot" {
		t.Errorf("username: got %q", opts.Username)
	}
	if opts.IconEmoji != ":yin_yang:" {
		t.Errorf("icon_emoji: got %q", opts.IconEmoji)
	}
	if opts.Channel != "#quotes" {
		t.Errorf("channel: got %q", opts.Channel)
	}
}

func TestLoadOptions_Missing(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing options file, got nil")
	}
}

func TestLoadOptions_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("username: [unclosed"), 0644); err != nil {
		t.Fatalf("writing options file: %v", err)
	}

	_, err := LoadOptions(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
