package config

import (
	"context"
	"errors"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"go.uber.org/multierr"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	slackBotTokenSecretKey = "SLACK_BOT_TOKEN_SECRET"
	webhookURLSecretKey    = "WEBHOOK_URL_SECRET"
)

// ErrSecretNotFound is returned when a named secret has no accessible version.
var ErrSecretNotFound = errors.New("secret not found")

// SecretSource resolves a secret name to its current value.
type SecretSource interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// SecretManager reads secrets from Google Cloud Secret Manager.
type SecretManager struct {
	client    *secretmanager.Client
	projectID string
}

// NewSecretManager creates a Secret Manager client for projectID.
func NewSecretManager(ctx context.Context, projectID string) (*SecretManager, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating secret manager client: %w", err)
	}
	return &SecretManager{client: client, projectID: projectID}, nil
}

// GetSecret returns the latest version of the named secret.
func (m *SecretManager) GetSecret(ctx context.Context, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", m.projectID, name),
	}

	result, err := m.client.AccessSecretVersion(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, name)
		}
		return "", fmt.Errorf("error accessing secret %s: %w", name, err)
	}

	value := string(result.Payload.Data)
	if value == "" {
		return "", fmt.Errorf("secret %s is empty", name)
	}
	return value, nil
}

// Close releases the underlying client.
func (m *SecretManager) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// LoadConfigWithSecrets loads configuration like LoadConfig, but
// SLACK_BOT_TOKEN and WEBHOOK_URL fall back to the secrets named by
// SLACK_BOT_TOKEN_SECRET and WEBHOOK_URL_SECRET when unset.
func LoadConfigWithSecrets(ctx context.Context, getenv func(string) string, secrets SecretSource) (*Config, error) {
	resolved := map[string]string{}
	var errs error

	for key, secretKey := range map[string]string{
		"SLACK_BOT_TOKEN": slackBotTokenSecretKey,
		"WEBHOOK_URL":     webhookURLSecretKey,
	} {
		if getenv(key) != "" {
			continue
		}
		name := getenv(secretKey)
		if name == "" {
			continue
		}
		value, err := secrets.GetSecret(ctx, name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		resolved[key] = value
	}

	if errs != nil {
		return nil, errs
	}

	return LoadConfig(func(key string) string {
		if value, ok := resolved[key]; ok {
			return value
		}
		return getenv(key)
	})
}
