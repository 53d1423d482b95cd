package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/philipparndt/gobox3d/internal/loader"
	"github.com/philipparndt/gobox3d/pkg/analysis"
	"github.com/philipparndt/gobox3d/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		precision int
		debounce  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-report a model's extent whenever it changes",
		Long: `Print the extent of a model and print it again every time the file changes.
For OpenSCAD sources every use/include dependency is watched as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd, args[0], precision, debounce)
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", defaultPrecision, "Fraction digits (negative picks automatically)")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Quiet period after a change before reloading")
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, file string, precision int, debounce time.Duration) error {
	out := cmd.OutOrStdout()
	var mu sync.Mutex

	report := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}

		model, err := loader.Load(ctx, file)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error loading %s: %v\n", file, err)
			return
		}
		printReport(out, file, analysis.AnalyzeModel(model), precision)
	}

	files, err := loader.WatchList(file)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(debounce, watcher.WithErrorHandler(func(err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Watcher error: %v\n", err)
	}))
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(files, func(string) { report() }); err != nil {
		return err
	}

	report()
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d file(s) for changes, press Ctrl+C to stop\n", len(files))

	fw.Start(ctx)
	<-ctx.Done()
	return nil
}
