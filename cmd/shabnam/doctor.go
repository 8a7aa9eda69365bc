// cmd/shabnam/doctor.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shabnam/internal/core/domain"
	"shabnam/internal/platform/config"
	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/logx"
	"shabnam/internal/platform/toolcheck"
)

func (a *app) doctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external tools each approach runs are installed",
		Long: `Looks up every binary the chosen approach runs on PATH and asks it for its version.
Without --fast or --slow both approaches are checked. Exits non-zero when
anything is missing. Nothing is installed or executed beyond the version probe.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := config.BindFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("fast", "slow")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a.started = true
		return a.runDoctor(cmd, flags)
	}
	return cmd
}

func (a *app) runDoctor(cmd *cobra.Command, flags *config.Flags) error {
	cfg, err := config.Load(cmd.Flags(), flags)
	if err != nil {
		return err
	}

	logger := logx.NewWithWriter(a.errOut, cfg.LogLevel())
	a.logger = logger
	a.presenter = newPresenter(a.out, cfg.Log.NoColor)
	defer a.presenter.Close()

	approaches := []domain.Approach{domain.ApproachFast, domain.ApproachSlow}
	if cfg.Core.Approach != "" {
		approaches = []domain.Approach{cfg.Core.Approach}
	}

	checker := toolcheck.NewChecker(logger, toolcheck.DefaultVersionTimeout)
	missing := 0
	for _, approach := range approaches {
		results := checker.Check(cmd.Context(), toolcheck.ForApproach(cfg.Tools, approach, cfg.Merge.Mode))

		title := fmt.Sprintf("%s approach (%s merge)", approach.Title(), cfg.Merge.Mode)
		a.presenter.Table(title, toolcheck.Header, toolcheck.Rows(results))
		a.presenter.Info(toolcheck.Summary(results))

		missing += len(toolcheck.Missing(results))
	}

	if missing > 0 {
		return errors.WithKind(errors.ErrMissingTool,
			fmt.Sprintf("%d required tool(s) not found on PATH", missing))
	}
	return nil
}
