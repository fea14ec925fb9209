package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/settle-convert/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversions over HTTP",
	Long: `Serve starts an HTTP server exposing the conversion engine:

  GET  /api/health          liveness and endpoint list
  POST /api/convert         JSON {"type": "gpa"|"medical", "content": "..."}
  POST /api/convert/upload  multipart form with "file" and "type"
  GET  /metrics             Prometheus metrics

Both convert endpoints respond with {"original", "converted", ...}.
Uploads are converted in memory and not stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Log.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		srv, err := server.New(cfg.Server, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":3000", "listen address")
	serveCmd.Flags().Int64("max-upload-bytes", 10<<20, "maximum request body size in bytes")
	serveCmd.Flags().Duration("shutdown-timeout", 0, "graceful shutdown timeout (default 10s)")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.max_upload_bytes", serveCmd.Flags().Lookup("max-upload-bytes"))
	_ = viper.BindPFlag("server.shutdown_timeout", serveCmd.Flags().Lookup("shutdown-timeout"))

	rootCmd.AddCommand(serveCmd)
}
