// Package main provides the todo CLI, an interactive todo list shell.
package main

import (
	"os"

	"github.com/mesh-intelligence/todo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
