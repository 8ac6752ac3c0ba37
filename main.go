package main

import (
	"log"

	"github.com/ytget/flashforge/internal/launch"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := launch.Run(version); err != nil {
		log.Fatalf("flashforge: %v", err)
	}
}
