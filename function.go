package function

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/vyper/kintai/internal/config"
	"github.com/vyper/kintai/internal/handlers"
	"github.com/vyper/kintai/internal/transport"
	"go.uber.org/zap"
)

var globalConfig *config.Config

func init() {
	functions.HTTP("Kintai", kintai)

	// Tests build their own config and call handleKintai directly.
	if testing.Testing() {
		return
	}

	logger := zap.Must(config.NewLogger(config.DefaultLogLevel))
	defer logger.Sync()

	cfg, err := config.Load(context.Background(), os.Getenv)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	globalConfig = cfg
}

// kintai is an HTTP Cloud Function.
func kintai(w http.ResponseWriter, r *http.Request) {
	handleKintai(w, r, globalConfig)
}

// handleKintai processes one request with injectable config
func handleKintai(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	transport.NewHTTPHandler(handlers.NewDispatcher(cfg), logger, "cloudfunctions")(w, r)
}

// Kintai is the exported function for the Cloud Function entry point
func Kintai(w http.ResponseWriter, r *http.Request) {
	kintai(w, r)
}
