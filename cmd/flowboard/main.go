// Package main provides the flowboard CLI, a terminal preview for
// dashboard files laid out by the flow engine.
//
// Usage:
//
//	flowboard pack FILE [--json]    Print the packed rows
//	flowboard render FILE           Draw the dashboard
//	flowboard check PATH...         Validate and pack dashboard files
//	flowboard version               Print version information
//
// Examples:
//
//	flowboard render examples/overview.toml --width 100
//	flowboard pack --device tablet examples/overview.toml
//	flowboard check ./...
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
