package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"tripagent/internal/models/response_models"
	"tripagent/internal/services"
)

var planJSON bool

var planCmd = &cobra.Command{
	Use:   "plan <request>",
	Short: "Plan a single trip and exit",
	Example: `  tripagent plan "I want to go to Shanghai for 3 nights, my name is Li Hua"
  tripagent plan --json 我想去北京玩3天，住两晚`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var planService services.PlanServiceInterface
		app := fx.New(
			pipelineModules(quietLogs),
			fx.Populate(&planService),
		)
		if err := app.Start(cmd.Context()); err != nil {
			return err
		}
		defer app.Stop(cmd.Context())

		state, err := planService.CreatePlan(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		if planJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(response_models.NewPlanResponse(state))
		}
		renderPlan(cmd.OutOrStdout(), state)
		return nil
	},
}

func init() {
	planCmd.Flags().BoolVar(&planJSON, "json", false, "print the plan as JSON")
}
