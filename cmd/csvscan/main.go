// Command csvscan streams CSV files: print them, take their first rows, or
// summarise them, without loading whole files into memory.
//
// Usage:
//
//	csvscan cat [flags] FILE...
//	csvscan head -n 10 [flags] FILE
//	csvscan stats [flags] FILE...
//
// FILE may be "-" for standard input. Gzip and zstd input is decompressed
// transparently.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr, afero.NewOsFs())
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
