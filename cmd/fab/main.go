package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fabcli/internal/flow"
	"fabcli/internal/ui"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, ui.Errorf("%v", usage.err))
			os.Exit(2)
		}

		var flowErr *flow.Error
		if errors.As(err, &flowErr) {
			fmt.Fprintln(os.Stderr, ui.Errorf("%s", flowErr.Error()))
			if flowErr.Syntax != "" {
				fmt.Fprintln(os.Stderr, ui.Hint(flowErr.Syntax))
			}
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		os.Exit(1)
	}
}
