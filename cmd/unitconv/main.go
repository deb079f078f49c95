package main

import (
	"context"
	"os"
	"strings"

	"github.com/doeshing/unitconv/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}
	os.Exit(cli.Execute(ctx, os.Args[1:], opts))
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("UNITCONV_DEBUG"), "1") || strings.EqualFold(os.Getenv("UNITCONV_DEBUG"), "true")
}
