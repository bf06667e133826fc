// Command local serves the Cloud Function on PORT for development.
package main

import (
	"log"
	"os"

	// Registers the Kintai function.
	_ "github.com/vyper/kintai"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	// Target the function by name instead of serving every registered one.
	os.Setenv("FUNCTION_TARGET", "Kintai")

	if err := funcframework.Start(port); err != nil {
		log.Fatalf("funcframework.Start: %v\n", err)
	}
}
