package main

import (
	"fmt"
	"os"

	flatcompat "github.com/arthur-debert/flatcompat/cmd/flatcompat"
	"github.com/arthur-debert/flatcompat/pkg/style"
)

func main() {
	rootCmd := flatcompat.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
