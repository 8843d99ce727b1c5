package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"carehome/internal/config"
	"carehome/internal/core"
	"carehome/internal/logging"
	"carehome/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	annotationSkipLoad = "carehome/skip-load"
	annotationMutates  = "carehome/mutates"
)

// app carries the state shared by every subcommand for one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfgFile     string
	as          string
	showMetrics bool

	cfg        config.Config
	logger     *zap.Logger
	promReg    *prometheus.Registry
	metrics    *core.PrometheusMetrics
	store      domain.SnapshotStore
	closeStore func() error
	registry   *core.Registry
}

// execute runs one invocation. Cleanup runs even when the command fails,
// since cobra skips post-run hooks after a RunE error.
func execute(args []string, out, errOut io.Writer) error {
	a := &app{out: out, errOut: errOut}
	root := newRootCmd(a)
	root.Version = version
	root.SetArgs(args)
	err := root.Execute()
	return errors.Join(err, a.cleanup())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "carehome",
		Short:         "Manage a residential care facility registry",
		Long:          `Manage beds, residents, staff rosters, prescriptions and the audit trail of a care facility.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.save(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./"+config.DefaultFile+" if present)")
	flags.StringVar(&a.as, "as", "", "username of the acting staff member")
	flags.BoolVar(&a.showMetrics, "metrics", false, "print prometheus metrics after the command")

	root.AddCommand(
		a.newInitCmd(),
		a.newBedsCmd(),
		a.newResidentsCmd(),
		a.newStaffCmd(),
		a.newShiftCmd(),
		a.newResidentCmd(),
		a.newPrescribeCmd(),
		a.newAdministerCmd(),
		a.newComplianceCmd(),
		a.newAuditCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(viper.New(), a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, "carehome")
	if err != nil {
		return err
	}
	a.logger = logger

	a.promReg = prometheus.NewRegistry()
	a.metrics, err = core.NewPrometheusMetrics(a.promReg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	store, closeStore, err := core.OpenSnapshotStore(ctxOf(cmd), cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	a.store, a.closeStore = store, closeStore

	if cmd.Annotations[annotationSkipLoad] == "true" {
		return nil
	}
	reg, err := core.Load(ctxOf(cmd), store, a.registryOptions()...)
	switch {
	case errors.Is(err, domain.ErrNoSnapshot):
		a.logger.Info("no saved state, starting empty registry", zap.String("driver", cfg.Storage.Driver))
		reg = core.New(a.registryOptions()...)
	case err != nil:
		return err
	}
	a.registry = reg
	return nil
}

func (a *app) registryOptions() []core.Option {
	opts := []core.Option{core.WithLogger(a.logger), core.WithMetrics(a.metrics)}
	if a.cfg.Compliance.RequireDoctor {
		opts = append(opts, core.WithDoctorPresenceRule())
	}
	return opts
}

// save persists the registry after a successful mutating command.
func (a *app) save(cmd *cobra.Command) error {
	if a.registry == nil || cmd.Annotations[annotationMutates] != "true" {
		return nil
	}
	return a.registry.Save(ctxOf(cmd), a.store)
}

func (a *app) cleanup() error {
	var errs []error
	if a.closeStore != nil {
		errs = append(errs, a.closeStore())
		a.closeStore = nil
	}
	if a.showMetrics && a.promReg != nil {
		errs = append(errs, a.writeMetrics())
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return errors.Join(errs...)
}

func (a *app) writeMetrics() error {
	families, err := a.promReg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(a.errOut, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}

// actor resolves --as against the staff directory.
func (a *app) actor() (domain.Actor, error) {
	if a.as == "" {
		return domain.Actor{}, &domain.InvalidArgumentError{Field: "--as", Reason: "acting username required"}
	}
	s, err := a.registry.Staff(a.as)
	if err != nil {
		return domain.Actor{}, err
	}
	return domain.ActorFor(s), nil
}

// mutating marks cmd so the registry is saved after it succeeds.
func mutating(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationMutates] = "true"
	return cmd
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
