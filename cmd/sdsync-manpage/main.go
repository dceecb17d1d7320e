package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sdsync/cmd/sdsync"
	"github.com/arthur-debert/sdsync/internal/version"
)

func main() {
	rootCmd := sdsync.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SDSYNC",
		Section: "1",
		Source:  "sdsync " + version.Version,
		Manual:  "sdsync manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
