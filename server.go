package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/firodj/mipsdecode/internal"
)

func serveCommand(root *rootConfig) *ffcli.Command {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var listen string
	fs.StringVar(&listen, "listen", "", "listen address, empty = config listen")

	return &ffcli.Command{
		Name:      "serve",
		ShortHelp: "serve the decoder over HTTP",
		FlagSet:   fs,
		Exec: func(ctx context.Context, args []string) error {
			if err := root.load(); err != nil {
				return err
			}
			if listen == "" {
				listen = root.cfg.Listen
			}

			repo, err := root.openRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			api := internal.NewAPI(internal.NewDecoder(root.log), repo, root.log, root.cfg.HistoryLimit)
			e := api.Echo()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := e.Shutdown(shutdownCtx); err != nil {
					root.log.WithError(err).Warn("shutdown")
				}
			}()

			root.log.WithField("listen", listen).Info("serving")
			err = e.Start(listen)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}
}
