// Command lambda runs the attendance report handler behind API Gateway.
package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/vyper/kintai/internal/config"
	"github.com/vyper/kintai/internal/handlers"
	"github.com/vyper/kintai/internal/transport"
)

func main() {
	cfg, err := config.Load(context.Background(), os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	defer cfg.Logger.Sync()

	dispatcher := handlers.NewDispatcher(cfg)
	lambda.Start(transport.NewLambdaHandler(dispatcher, cfg.Logger))
}
