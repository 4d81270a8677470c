package cmd

import (
	"github.com/spf13/cobra"

	"github.com/finbridge/statement-ingest/internal/api"
)

var listenFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the statement conversion HTTP API",
	Long: `Start the HTTP server exposing the conversion endpoints:

  GET  /api/health       liveness check
  POST /api/convert      multipart PDF upload -> JSON transactions + CSV
  POST /api/convert/csv  multipart CSV upload -> JSON transactions + CSV`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		addr := listenFlag
		if addr == "" {
			addr = cfg.ListenAddr
		}

		log := newLogger(cfg)
		log.Info("starting server", "addr", addr)

		app := api.NewServer(cfg.MaxUploadMB)
		return app.Listen(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenFlag, "listen", "", "Listen address (overrides config)")
}
