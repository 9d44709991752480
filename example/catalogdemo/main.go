// Command catalogdemo runs a short lending scenario against the shared catalog
// and writes traces, metrics and logs to the console.
package main

import (
	"context"
	"log"
	"os"

	"github.com/AntonStoeckl/library-catalog-go/example/shared/shell/config"
)

func main() {
	ctx := context.Background()

	providers, err := config.NewObservabilityConfig(ctx, config.ObservabilityOptions{
		LogOutput:    os.Stderr,
		TraceOutput:  os.Stderr,
		MetricOutput: os.Stderr,
	})
	if err != nil {
		log.Fatalf("Failed to set up observability: %v", err)
	}

	defer func() {
		if shutdownErr := providers.Shutdown(); shutdownErr != nil {
			log.Printf("Failed to shut down observability: %v", shutdownErr)
		}
	}()

	lib, err := GetInstance()
	if err != nil {
		log.Fatalf("Failed to create catalog: %v", err)
	}

	again, err := GetInstance()
	if err != nil {
		log.Fatalf("Failed to get catalog: %v", err)
	}

	if lib != again {
		log.Fatalf("Expected the shared catalog instance to be reused")
	}

	if _, err := RunScenario(ctx, lib, providers.Logger, os.Stdout); err != nil {
		log.Printf("Scenario failed: %v", err)
	}
}
