package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"tripagent/internal/catalog"
	"tripagent/internal/config"
	"tripagent/pkg/utils"
)

var doctorTimeout time.Duration

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, provider connectivity and the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	doctorCmd.Flags().DurationVar(&doctorTimeout, "timeout", 10*time.Second, "timeout for the provider check")
}

func runDoctor(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(out, "[FAIL] config: %v\n", err)
		return err
	}
	fmt.Fprintln(out, "[ OK ] config loaded")

	llm := cfg.LLM
	fmt.Fprintf(out, "       provider=%s model=%s base_url=%s timeout=%s\n", llm.Provider, llm.Model, llm.BaseURL, llm.Timeout)
	switch {
	case llm.Provider == utils.ProviderNone:
		fmt.Fprintln(out, "[INFO] semantic extraction disabled, rules only")
	case !llm.Enabled():
		fmt.Fprintf(out, "[WARN] no API key for %s, rules only\n", llm.Provider)
	default:
		checkProvider(ctx, out, llm)
	}

	c, err := catalog.LoadFromFile(cfg.Catalog.Path)
	if err != nil {
		fmt.Fprintf(out, "[FAIL] catalog: %v\n", err)
		return err
	}
	source := cfg.Catalog.Path
	if source == "" {
		source = "embedded"
	}
	fmt.Fprintf(out, "[ OK ] catalog (%s): %d destinations: %v\n", source, len(c.Cities), c.CityNames())
	return nil
}

// checkProvider lists the provider's models. A failure is reported, not
// returned, since planning still works on rules.
func checkProvider(ctx context.Context, out io.Writer, llm config.LLMConfig) {
	ctx, cancel := context.WithTimeout(ctx, doctorTimeout)
	defer cancel()

	client, err := utils.NewCompletionClient(ctx, llm.Completion())
	if err != nil {
		fmt.Fprintf(out, "[FAIL] %s client: %v\n", llm.Provider, err)
		return
	}
	defer client.Close()

	models, err := client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(out, "[FAIL] %s unreachable: %v\n", llm.Provider, err)
		return
	}
	fmt.Fprintf(out, "[ OK ] %s reachable, %d models\n", llm.Provider, len(models))
	if !slices.Contains(models, llm.Model) {
		fmt.Fprintf(out, "[WARN] model %q not offered by %s\n", llm.Model, llm.Provider)
	}
}
