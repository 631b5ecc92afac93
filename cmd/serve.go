package cmd

import (
	"net/http"

	"github.com/Makhuta/arr-monitor-manager/config"
	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
	"github.com/Makhuta/arr-monitor-manager/pkg/logger"
	"github.com/Makhuta/arr-monitor-manager/pkg/monitor"
	"github.com/Makhuta/arr-monitor-manager/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the unmonitor bridge server",
	Long:  `start the unmonitor bridge server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := configstore.Open(cfg.Store.FilePath)
		if err != nil {
			log.Fatal("failed to open configuration store", zap.Error(err))
		}

		httpClient := &http.Client{
			Timeout: cfg.Client.Timeout,
		}

		factory := monitor.NewClientFactory(httpClient)
		m := monitor.New(factory)
		s := server.New(log, store, m, factory)
		log.Error(s.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
