package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Showroom/internal/hermes"
)

func newEventsCmd(configPath *string) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail showroom events from NATS",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Logging)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := hermes.Connect(ctx, hermes.Options{URL: cfg.Hermes.URL, Name: "showroom-events"}, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			return tailEvents(ctx, client, subject, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&subject, "subject", hermes.SubjectAll, "Subject filter")
	return cmd
}

func tailEvents(ctx context.Context, c hermes.Client, subject string, w io.Writer) error {
	lines := make(chan string, 64)
	err := c.Subscribe(subject, func(subj string, data []byte) {
		select {
		case lines <- fmt.Sprintf("%s %s", subj, data):
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case l := <-lines:
			fmt.Fprintln(w, l)
		}
	}
}
