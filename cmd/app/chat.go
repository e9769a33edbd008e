package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"tripagent/internal/catalog"
	"tripagent/internal/services"
	"tripagent/pkg/utils"
)

var quitWords = map[string]bool{"quit": true, "exit": true, "q": true, "退出": true}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Plan trips interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			planService services.PlanServiceInterface
			cat         *catalog.Catalog
		)
		app := fx.New(
			pipelineModules(quietLogs),
			fx.Populate(&planService, &cat),
		)
		if err := app.Start(cmd.Context()); err != nil {
			return err
		}
		defer app.Stop(context.Background())

		return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), planService, cat)
	},
}

func runChat(ctx context.Context, in io.Reader, out io.Writer, planService services.PlanServiceInterface, cat *catalog.Catalog) error {
	renderBanner(out, cat)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if quitWords[strings.ToLower(line)] {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if line == "" {
			fmt.Fprintln(out, "Please describe your trip.")
			continue
		}

		state, err := planService.CreatePlan(ctx, line)
		switch {
		case errors.Is(err, utils.ErrPromptTooLong):
			fmt.Fprintf(out, "Request is too long, keep it under %d characters.\n", services.MaxPromptLength)
			continue
		case err != nil:
			return err
		}
		renderPlan(out, state)
	}
}
