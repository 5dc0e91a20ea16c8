// cmd/rejection-agent/main.go
package main

import (
	"fmt"
	"os"

	"saif-rejection-agent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
