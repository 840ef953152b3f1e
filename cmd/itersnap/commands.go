package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"go.llib.dev/iterbridge/pkg/config"
	"go.llib.dev/iterbridge/pkg/errorkit"
	"go.llib.dev/iterbridge/pkg/iterkit"
	"go.llib.dev/iterbridge/pkg/logging"
	"go.llib.dev/iterbridge/pkg/snapshot"
)

type options struct {
	ConfigPath string
	DBPath     string
}

// env is what every subcommand runs with, after the configuration was resolved.
type env struct {
	cfg   config.Config
	store *snapshot.Bolt
	log   zerolog.Logger
}

func (o *options) open() (*env, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	if o.DBPath != "" {
		cfg.Snapshot.Path = o.DBPath
	}
	l := logging.New(cfg.Logging).With().Str(logging.FieldComponent, "itersnap").Logger()
	logging.Set(l)
	store, err := snapshot.NewBolt(cfg.Snapshot.Path, cfg.Snapshot.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", cfg.Snapshot.Path)
	}
	return &env{cfg: cfg, store: store, log: l}, nil
}

func newRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:   "itersnap [subcommand]",
		Short: "Inspect persisted iterator snapshots",
		// Silence errors because we will print the error ourselves in main.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&o.ConfigPath, "config", "", "path of a TOML configuration file")
	root.PersistentFlags().StringVar(&o.DBPath, "db", "", "path of the snapshot database, overrides snapshot.path")

	root.AddCommand(
		listCmd(&o),
		showCmd(&o),
		valuesCmd(&o),
		deleteCmd(&o),
		configCmd(&o),
	)
	return root
}

// withStore runs fn with an opened store, and closes the store afterwards.
func withStore(o *options, fn func(ctx context.Context, e *env) error) (rErr error) {
	e, err := o.open()
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, e.store.Close)
	ctx := logging.ContextWith(e.log.WithContext(context.Background()),
		logging.Field("db", e.cfg.Snapshot.Path))
	return fn(ctx, e)
}

func listCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(o, func(ctx context.Context, e *env) error {
				rs, err := e.store.List(ctx)
				if err != nil {
					return errors.Wrap(err, "listing snapshots")
				}
				return writeTable(cmd.OutOrStdout(), rs)
			})
		},
	}
}

func writeTable(out io.Writer, rs []snapshot.Record) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCONSTRUCTOR\tSTATE\tCREATED")
	for _, r := range rs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Constructor, stateOf(r), r.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func stateOf(r snapshot.Record) string {
	switch {
	case r.Exhausted():
		return "exhausted"
	case r.State == nil:
		return "-"
	default:
		return fmt.Sprintf("%d", *r.State)
	}
}

func showCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a snapshot record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(o, func(ctx context.Context, e *env) error {
				r, err := e.store.Load(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "id:          %s\n", r.ID)
				fmt.Fprintf(out, "constructor: %s\n", r.Constructor)
				fmt.Fprintf(out, "state:       %s\n", stateOf(r))
				fmt.Fprintf(out, "created:     %s\n", r.CreatedAt.Format(time.RFC3339Nano))
				for i, arg := range r.Args {
					fmt.Fprintf(out, "arg[%d]:      %s\n", i, string(arg))
				}
				return nil
			})
		},
	}
}

func valuesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "values <id>",
		Short: "Print the values a restored sequence snapshot would still produce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(o, func(ctx context.Context, e *env) error {
				it, err := snapshot.RestoreSequence[any](ctx, e.store, args[0],
					iterkit.WithMaxIndex[any](e.cfg.Iter.MaxIndex),
					iterkit.WithLogger[any](e.log))
				if err != nil {
					return err
				}
				pi := iterkit.ToPullIter[any](it)
				defer pi.Close()
				for pi.Next() {
					fmt.Fprintln(cmd.OutOrStdout(), pi.Value())
				}
				return pi.Err()
			})
		},
	}
}

func deleteCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete snapshots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(o, func(ctx context.Context, e *env) error {
				for _, id := range args {
					if err := e.store.Delete(ctx, id); err != nil {
						return err
					}
					e.log.Info().Str(logging.FieldSnapshot, id).Msg("snapshot deleted")
				}
				return nil
			})
		},
	}
}

func configCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(o.ConfigPath)
			if err != nil {
				return errors.Wrap(err, "loading config")
			}
			if o.DBPath != "" {
				cfg.Snapshot.Path = o.DBPath
			}
			var sb strings.Builder
			if err := config.Encode(&sb, cfg); err != nil {
				return errors.Wrap(err, "encoding config")
			}
			_, err = io.WriteString(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}
