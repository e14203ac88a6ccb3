//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of rustlife requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life`, or use `go run ./cmd/lifeterm` for the terminal version.")
	os.Exit(2)
}
