// Command fakescanner starts an in-process eSCL device for trying out the
// client without hardware.
// Usage: go run ./cmd/fakescanner [port]
// Default port: 8089
package main

import (
	"log"
	"os"
	"strconv"

	"github.com/diitoo/esclscan/internal/fakescanner"
)

func main() {
	cfg := fakescanner.Config{}

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	server := fakescanner.NewFakeScanner(cfg)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
