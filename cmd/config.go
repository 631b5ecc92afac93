package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Makhuta/arr-monitor-manager/config"
	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
	"github.com/Makhuta/arr-monitor-manager/pkg/monitor"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configName         string
	configService      string
	configHost         string
	configAPIKey       string
	configQualityScore int
	configFormatName   string
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "manage service configurations",
	Long:  `manage service configurations`,
}

// listConfigsCmd lists all stored configurations
var listConfigsCmd = &cobra.Command{
	Use:   "list",
	Short: "list stored configurations",
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := mustOpenStore()

		for _, c := range store.List() {
			gate := "no gate configured"
			if c.QualityScore != nil {
				gate = fmt.Sprintf("score >= %d", *c.QualityScore)
			}
			if c.FormatName != "" {
				if c.QualityScore != nil {
					gate += fmt.Sprintf(" or format contains %q", c.FormatName)
				} else {
					gate = fmt.Sprintf("format contains %q", c.FormatName)
				}
			}
			log.Printf("%s\t%s\t%s\t%s\t%s", c.ID, c.Name, c.ServiceType.Title(), c.Host, gate)
		}
	},
}

// addConfigCmd stores a new configuration after verifying the endpoint
var addConfigCmd = &cobra.Command{
	Use:   "add",
	Short: "add a configuration",
	Run: func(cmd *cobra.Command, args []string) {
		store, appCfg := mustOpenStore()

		service, err := arr.ParseServiceType(configService)
		if err != nil {
			log.Fatalf("invalid service: %v", err)
		}

		cfg := configstore.Configuration{
			Name:        configName,
			ServiceType: service,
			Host:        configHost,
			APIKey:      configAPIKey,
			FormatName:  configFormatName,
		}
		if cmd.Flags().Changed("quality-score") {
			score := configQualityScore
			cfg.QualityScore = &score
		}

		client := newClientFactory(appCfg)(cfg)
		if err := client.TestConnection(context.Background()); err != nil {
			log.Fatalf("connection test failed: %v", err)
		}

		stored, err := store.Add(cfg)
		if err != nil {
			log.Fatalf("failed to add configuration: %v", err)
		}

		log.Printf("added %s (%s), webhook token: %s", stored.Name, stored.ID, stored.WebhookToken)
	},
}

// deleteConfigCmd removes a configuration
var deleteConfigCmd = &cobra.Command{
	Use:        "delete",
	Short:      "delete a configuration",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"id or name"},
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := mustOpenStore()

		cfg := mustFindConfig(store, args[0])
		if err := store.Delete(cfg.ID); err != nil {
			log.Fatalf("failed to delete configuration: %v", err)
		}

		log.Printf("deleted %s", cfg.Name)
	},
}

// tokenConfigCmd regenerates the webhook token of a configuration
var tokenConfigCmd = &cobra.Command{
	Use:        "token",
	Short:      "regenerate the webhook token of a configuration",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"id or name"},
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := mustOpenStore()

		cfg := mustFindConfig(store, args[0])
		token, err := store.RegenerateToken(cfg.ID)
		if err != nil {
			log.Fatalf("failed to regenerate token: %v", err)
		}

		log.Printf("new webhook token for %s: %s", cfg.Name, token)
	},
}

// testConfigCmd checks that the configured endpoint is reachable
var testConfigCmd = &cobra.Command{
	Use:        "test",
	Short:      "test the connection of a configuration",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"id or name"},
	Run: func(cmd *cobra.Command, args []string) {
		store, appCfg := mustOpenStore()

		cfg := mustFindConfig(store, args[0])
		client := newClientFactory(appCfg)(cfg)
		if err := client.TestConnection(context.Background()); err != nil {
			log.Fatalf("connection test failed: %v", err)
		}

		log.Printf("%s is reachable", cfg.Host)
	},
}

func mustOpenStore() (*configstore.Store, config.Config) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalf("failed to read configurations: %v", err)
	}

	store, err := configstore.Open(cfg.Store.FilePath)
	if err != nil {
		log.Fatalf("failed to open configuration store: %v", err)
	}

	return store, cfg
}

func newClientFactory(cfg config.Config) monitor.ClientFactory {
	return monitor.NewClientFactory(&http.Client{Timeout: cfg.Client.Timeout})
}

func mustFindConfig(store *configstore.Store, idOrName string) configstore.Configuration {
	cfg, err := store.Get(idOrName)
	if err == nil {
		return cfg
	}

	cfg, err = store.GetByName(idOrName)
	if err != nil {
		log.Fatalf("no configuration with id or name %q", idOrName)
	}

	return cfg
}

func init() {
	addConfigCmd.Flags().StringVarP(&configName, "name", "n", "", "configuration name")
	addConfigCmd.Flags().StringVarP(&configService, "service", "s", "", "service type (sonarr or radarr)")
	addConfigCmd.Flags().StringVar(&configHost, "host", "", "manager host, host:port or full url")
	addConfigCmd.Flags().StringVar(&configAPIKey, "api-key", "", "manager api key")
	addConfigCmd.Flags().IntVar(&configQualityScore, "quality-score", 0, "minimum custom format score to unmonitor")
	addConfigCmd.Flags().StringVar(&configFormatName, "format-name", "", "custom format name fragment to unmonitor")
	_ = addConfigCmd.MarkFlagRequired("name")
	_ = addConfigCmd.MarkFlagRequired("service")
	_ = addConfigCmd.MarkFlagRequired("host")
	_ = addConfigCmd.MarkFlagRequired("api-key")

	configCmd.AddCommand(listConfigsCmd)
	configCmd.AddCommand(addConfigCmd)
	configCmd.AddCommand(deleteConfigCmd)
	configCmd.AddCommand(tokenConfigCmd)
	configCmd.AddCommand(testConfigCmd)

	rootCmd.AddCommand(configCmd)
}
