// Package main provides the djsum command-line interface.
//
// djsum walks one or more roots, computes a digest for every regular file
// it finds, and can descend into zip and tar-family archives to hash their
// members as well. See internal/cmd for the command surface.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"

	"github.com/dendrascience/djsum/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
