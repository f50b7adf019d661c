// Package notify delivers a selected quotation to a Slack-compatible
// webhook with a single synchronous HTTP POST.
package notify

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvWebhook is the environment variable holding the required webhook URL.
const EnvWebhook = "SLACK_WEBHOOK"

// DefaultTimeout is the default per-request timeout for delivery.
const DefaultTimeout = 30 * time.Second

// Options holds optional Slack presentation settings, loadable from a
// YAML options file.
type Options struct {
	// Username overrides the webhook's default sender name.
	Username string `yaml:"username"`

	// IconEmoji overrides the webhook's default icon, e.g. ":yin_yang:".
	IconEmoji string `yaml:"icon_emoji"`

	// Channel overrides the webhook's default channel.
	Channel string `yaml:"channel"`
}

// Config holds delivery configuration.
type Config struct {
	// WebhookURL is the destination webhook. Required.
	WebhookURL string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// Options are optional presentation settings.
	Options Options
}

// ConfigFromEnv builds a Config from the process environment. The
// webhook URL is required; its absence is a fatal configuration error.
func ConfigFromEnv() (Config, error) {
	webhook := os.Getenv(EnvWebhook)
	if webhook == "" {
		return Config{}, &MissingConfigError{Key: EnvWebhook}
	}
	return Config{
		WebhookURL: webhook,
		Timeout:    DefaultTimeout,
	}, nil
}

// LoadOptions reads presentation options from a YAML file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options file: %w", err)
	}
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing options file: %w", err)
	}
	return opts, nil
}
