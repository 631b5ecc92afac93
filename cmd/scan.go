package cmd

import (
	"context"

	"github.com/Makhuta/arr-monitor-manager/pkg/logger"
	"github.com/Makhuta/arr-monitor-manager/pkg/monitor"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// scanCmd runs a force-unmonitor scan for one configuration
var scanCmd = &cobra.Command{
	Use:        "scan",
	Short:      "unmonitor everything already meeting the quality gate",
	Long:       `walk the whole library of a configured service and unmonitor every item whose encode already meets the quality gate`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"id or name"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		store, appCfg := mustOpenStore()
		cfg := mustFindConfig(store, args[0])

		m := monitor.New(newClientFactory(appCfg))
		if err := m.ForceUnmonitor(ctx, cfg); err != nil {
			log.Fatal("scan failed", zap.Error(err))
		}

		log.Info("scan finished", zap.String("config", cfg.Name))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
