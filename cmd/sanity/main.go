// Command sanity runs read-only requests against a Sanity.io project.
package main

import (
	"context"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adamwoolhether/sanity/cmd/sanity/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.NewSanityCommand().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
