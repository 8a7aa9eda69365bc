// cmd/shabnam/root.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shabnam/internal/adapters/credentials"
	"shabnam/internal/core/domain"
	"shabnam/internal/core/ports"
	"shabnam/internal/core/usecases"
	"shabnam/internal/platform/config"
	"shabnam/internal/platform/logx"
	"shabnam/internal/platform/shell"
	"shabnam/internal/platform/validator"
	"shabnam/internal/platform/wildcard"
)

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shabnam <domain>",
		Short:         "Shabnam: Subdomain Enumeration Tool",
		Long:          config.LongHelp,
		Example:       config.Examples,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("Shabnam {{.Version}}\n")

	flags := config.BindFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("fast", "slow")
	cmd.MarkFlagsOneRequired("fast", "slow")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a.started = true
		return a.runRecon(cmd, flags, args[0])
	}

	cmd.AddCommand(a.doctorCmd(), a.versionCmd())
	return cmd
}

func (a *app) runRecon(cmd *cobra.Command, flags *config.Flags, raw string) error {
	cfg, err := config.Load(cmd.Flags(), flags)
	if err != nil {
		return err
	}

	logger := logx.NewWithWriter(a.errOut, cfg.LogLevel())
	a.logger = logger
	a.presenter = newPresenter(a.out, cfg.Log.NoColor)
	defer a.presenter.Close()

	// Validación antes de crear directorios o pedir claves
	name, err := validator.ValidateApexDomain(raw)
	if err != nil {
		return err
	}
	if !validator.IsRegistrable(name) {
		if reg, err := validator.RegistrableDomain(name); err == nil {
			a.presenter.Warning(fmt.Sprintf("%s looks like a subdomain of %s, continuing anyway", name, reg))
		}
	}

	logger.Info("shabnam starting",
		"version", version,
		"commit", commit,
		"domain", name,
		"approach", cfg.Core.Approach.String(),
		"merge", cfg.Merge.Mode.String(),
	)
	logger.Debug("effective configuration", "config", configJSON(cfg))

	ctx, cancel := rootContextWithSignals(cmd.Context())
	defer cancel()

	runner := shell.NewRunner(logger, a.presenter, shell.Options{
		Shell:       cfg.Runner.Shell,
		StepTimeout: cfg.Runner.StepTimeout,
		PreviewLen:  cfg.Runner.PreviewLen,
	})

	var prober ports.WildcardProber
	if cfg.Wildcard.Enabled {
		prober = wildcard.New(logger, wildcard.Options{
			Resolver: cfg.Wildcard.Resolver,
			Timeout:  cfg.Wildcard.Timeout,
		})
	}

	recon := usecases.NewRecon(usecases.ReconOptions{
		Base:        a.base,
		Settings:    settingsFrom(cfg),
		Runner:      runner,
		Credentials: credentials.NewPrompter(a.in, a.out, credentials.FromEnv(a.lookupEnv), logger),
		Prober:      prober,
		Presenter:   a.presenter,
		Logger:      logger,
	})

	report, err := recon.Run(ctx, domain.Target{Domain: name, Approach: cfg.Core.Approach})
	if err != nil {
		return err
	}

	logger.Info("run finished",
		"steps", report.Pipeline.Completed,
		"duration", report.Duration.String(),
	)
	return nil
}

func settingsFrom(cfg config.Config) usecases.Settings {
	return usecases.Settings{
		Tools:           cfg.Tools,
		Ports:           cfg.Probe.Ports,
		RandomAgent:     cfg.Probe.RandomAgent,
		Wordlists:       []string(cfg.Bruteforce.Wordlists),
		BruteMatchCodes: cfg.Bruteforce.MatchCodes,
		MergeMode:       cfg.Merge.Mode,
	}
}

func configJSON(cfg config.Config) string {
	s, err := cfg.ToJSON()
	if err != nil {
		return err.Error()
	}
	return s
}
