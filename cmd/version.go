package cmd

import (
	"fmt"
	"os"
	"runtime"
)

func runVersion() {
	fmt.Printf("gids %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Printf("GEMINI_API_KEY: %s\n", maskKey(os.Getenv("GEMINI_API_KEY")))
}

// maskKey summarizes a credential without revealing it. Short keys would
// be fully disclosed by a prefix+suffix, so they just report as configured.
func maskKey(key string) string {
	if key == "" {
		return "not set"
	}
	if len(key) <= 8 {
		return "configured"
	}
	return fmt.Sprintf("%s...%s (configured)", key[:4], key[len(key)-4:])
}
