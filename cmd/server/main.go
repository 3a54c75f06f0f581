// Command server runs the marketplace backend HTTP server.
//
// Configuration is read from the file named by CONFIG_PATH plus
// environment variable overrides. Exit codes: 0 = clean shutdown,
// 1 = startup or runtime error.
package main

import (
	"context"
	"log"

	"github.com/marketstage/backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
