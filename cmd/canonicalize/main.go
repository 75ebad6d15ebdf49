// Package main implements a command line tool that canonicalizes intervals.
//
//	canonicalize [flags] [name=]<interval>...
//
// Every interval is printed in its canonical form, one per line. Named intervals are saved to the interval store if it
// is enabled.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "canonicalize: %s\n", err)
		cancel()
		os.Exit(1)
	}
}
