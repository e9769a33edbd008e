package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"tripagent/cmd/fx/catalog_fx"
	"tripagent/cmd/fx/config_fx"
	"tripagent/cmd/fx/logger_fx"
	"tripagent/cmd/fx/memcache_fx"
	"tripagent/cmd/fx/mock_service_fx"
	"tripagent/cmd/fx/planner_fx"
	"tripagent/cmd/fx/prompt_fx"
	"tripagent/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tripagent",
	Short: "Trip planning agent",
	Long: `tripagent turns a free-text travel request into a booked trip:
it extracts destination, date, stay length and guest name, checks simulated
flight and hotel inventory, picks the best-value hotel and issues a booking.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(doctorCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); env TRIPAGENT_* overrides it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show info logs in interactive commands")
}

// pipelineModules are the providers every command shares.
func pipelineModules(overrides ...func(*config.Config)) fx.Option {
	return fx.Options(
		config_fx.Module(cfgFile, overrides...),
		logger_fx.Module,
		catalog_fx.Module,
		mock_service_fx.Module,
		prompt_fx.Module,
		memcache_fx.Module,
		planner_fx.Module,
	)
}

// quietLogs keeps interactive output readable unless --verbose is set.
func quietLogs(cfg *config.Config) {
	if !verbose {
		cfg.Log.Level = "warn"
	}
}
