package config

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DefaultSlashCommand = "/kintai"
	DefaultHTTPTimeout  = 5 * time.Second
	DefaultLogLevel     = "info"
)

// HTTPClient interface for mocking HTTP calls
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SlackClient interface for mocking Slack API calls
type SlackClient interface {
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Config holds the configuration for the function
type Config struct {
	SlackBotToken string
	WebhookURL    string
	SlashCommand  string
	HTTPTimeout   time.Duration
	LogLevel      string
	SlackAPI      SlackClient
	HTTPClient    HTTPClient
	Logger        *zap.Logger
}

// LoadConfig loads configuration from environment variables.
// Every missing or invalid variable is reported in the returned error.
func LoadConfig(getenv func(string) string) (*Config, error) {
	var errs error

	slackBotToken := getenv("SLACK_BOT_TOKEN")
	if slackBotToken == "" {
		errs = multierr.Append(errs, fmt.Errorf("SLACK_BOT_TOKEN environment variable is required"))
	}

	webhookURL := getenv("WEBHOOK_URL")
	if webhookURL == "" {
		errs = multierr.Append(errs, fmt.Errorf("WEBHOOK_URL environment variable is required"))
	} else if u, err := url.Parse(webhookURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = multierr.Append(errs, fmt.Errorf("WEBHOOK_URL must be an absolute URL, got %q", webhookURL))
	}

	slashCommand := getenv("SLACK_COMMAND")
	if slashCommand == "" {
		slashCommand = DefaultSlashCommand
	} else if !strings.HasPrefix(slashCommand, "/") {
		errs = multierr.Append(errs, fmt.Errorf("SLACK_COMMAND must start with '/', got %q", slashCommand))
	}

	httpTimeout := DefaultHTTPTimeout
	if raw := getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invalid HTTP_TIMEOUT format: %w", err))
		} else if d <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", d))
		} else {
			httpTimeout = d
		}
	}

	logLevel := getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	logger, err := NewLogger(logLevel)
	if err != nil {
		errs = multierr.Append(errs, err)
	}

	if errs != nil {
		return nil, errs
	}

	httpClient := &http.Client{Timeout: httpTimeout}

	slackOptions := []slack.Option{slack.OptionHTTPClient(httpClient)}
	if apiURL := getenv("SLACK_API_URL"); apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		slackOptions = append(slackOptions, slack.OptionAPIURL(apiURL))
	}

	return &Config{
		SlackBotToken: slackBotToken,
		WebhookURL:    webhookURL,
		SlashCommand:  slashCommand,
		HTTPTimeout:   httpTimeout,
		LogLevel:      logLevel,
		SlackAPI:      slack.New(slackBotToken, slackOptions...),
		HTTPClient:    httpClient,
		Logger:        logger,
	}, nil
}

// Load reads the configuration, pulling secrets from Secret Manager when
// SLACK_BOT_TOKEN_SECRET or WEBHOOK_URL_SECRET is set.
func Load(ctx context.Context, getenv func(string) string) (*Config, error) {
	if getenv(slackBotTokenSecretKey) == "" && getenv(webhookURLSecretKey) == "" {
		return LoadConfig(getenv)
	}

	projectID := getenv("GCP_PROJECT")
	if projectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT environment variable is required when reading secrets")
	}

	manager, err := NewSecretManager(ctx, projectID)
	if err != nil {
		return nil, err
	}
	defer manager.Close()

	return LoadConfigWithSecrets(ctx, getenv, manager)
}
