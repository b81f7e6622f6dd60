package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/trezcool/marksheet/storage/flatfile"
)

var watchFunc = flatfile.Watch // mockable

func (cli *commandLine) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the statistics again every time the marks file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return cli.watch(ctx, cmd)
		},
	}
}

func (cli *commandLine) watch(ctx context.Context, cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	report := func() {
		sum, err := cli.svc.Summarize()
		if err != nil {
			printError(w, err)
			return
		}
		renderSummary(w, sum)
	}

	report()
	return watchFunc(ctx, cli.dataFile, cli.log, func(ev fsnotify.Event) {
		if ev.Op&fsnotify.Remove != 0 {
			warnColor.Fprintln(w, "Marks file removed.")
		}
		report()
	})
}
