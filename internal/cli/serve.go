package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/pablasso/taskapp/internal/server"
	"github.com/pablasso/taskapp/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCmd(rt *env) *cobra.Command {
	var addr, dataFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local task store",
		Long:  `Serve a task collection at /data for local development. Tasks live in memory unless --data names a JSON file to persist them to.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.Config{Addr: rt.cfg.ServeAddr, DataFile: rt.cfg.ServeDataFile}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("data") {
				cfg.DataFile = dataFile
			}

			if rt.log.GetLevel() > zerolog.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}

			rt.log.Info().Str("version", version.Version).Msg("starting task store")
			srv, err := server.Init(cfg, rt.log)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from TASKAPP_SERVE_ADDR, :3000)")
	cmd.Flags().StringVar(&dataFile, "data", "", "JSON file to persist tasks to")

	return cmd
}
