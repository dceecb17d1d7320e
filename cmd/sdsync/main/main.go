package main

import (
	"os"

	"github.com/arthur-debert/sdsync/cmd/sdsync"
	"github.com/arthur-debert/sdsync/pkg/ui"
)

func main() {
	rootCmd := sdsync.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format := ui.ResolveFormat(ui.FormatAuto, "auto", os.Stderr)
		if renderer, rerr := ui.NewRenderer(format, os.Stderr); rerr == nil {
			_ = renderer.RenderError(err)
		}
		os.Exit(1)
	}
}
