package root

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/metrics"
	"github.com/impruthvi/flexboard-bytes-sub000/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Long: `Expose the completion engine over HTTP.

Endpoints:
  POST /api/tasks/{id}/complete?user=KEY
  POST /api/tasks/{id}/uncomplete?user=KEY
  GET  /api/users/{key}
  GET  /metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logger, err := server.NewLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			metrics.Register()

			if addr == "" {
				addr = os.Getenv("FLEXBOARD_ADDR")
			}
			if addr == "" {
				addr = ":8080"
			}

			srv := server.New(svc, logger)
			logger.Infow("flexboard api listening", "addr", addr)
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default FLEXBOARD_ADDR or :8080)")

	return cmd
}
