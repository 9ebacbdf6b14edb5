package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/jsonfetch/client"
	"github.com/GriffinCanCode/jsonfetch/internal/config"
	"github.com/GriffinCanCode/jsonfetch/internal/logging"
	"github.com/GriffinCanCode/jsonfetch/internal/paramfile"
	"github.com/GriffinCanCode/jsonfetch/jsonvalue"
	"github.com/GriffinCanCode/jsonfetch/params"
	"github.com/GriffinCanCode/jsonfetch/transport"
)

type options struct {
	cfg     *config.Config
	timeout time.Duration
	dev     bool
	compact bool
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.LoadOrDefault()}

	root := &cobra.Command{
		Use:           "jsonfetch",
		Short:         "Issue JSON requests with query-encoded or JSON-body parameters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", opts.cfg.Transport.Timeout,
		"request timeout")
	root.PersistentFlags().BoolVar(&opts.dev, "dev", opts.cfg.Logging.Development,
		"development logging (debug level, console output)")
	root.PersistentFlags().BoolVar(&opts.compact, "compact", false,
		"print the response on a single line")

	root.AddCommand(
		verbCmd(opts, client.GET),
		verbCmd(opts, client.POST),
		verbCmd(opts, client.PUT),
		verbCmd(opts, client.DELETE),
		encodeCmd(),
	)
	return root
}

// paramFlags holds the mutually exclusive parameter sources.
type paramFlags struct {
	file string
	data string
}

func (f *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "params", "p", "", "read parameters from a .json, .yaml or .toml file")
	cmd.Flags().StringVarP(&f.data, "data", "d", "", "inline JSON parameters")
	cmd.MarkFlagsMutuallyExclusive("params", "data")
}

func (f *paramFlags) load() (params.Value, error) {
	switch {
	case f.file != "":
		return paramfile.Load(f.file)
	case f.data != "":
		doc, err := jsonvalue.Parse([]byte(f.data))
		if err != nil {
			return nil, fmt.Errorf("invalid --data: %w", err)
		}
		return paramfile.FromJSON(doc)
	default:
		return params.Absent{}, nil
	}
}

func verbCmd(opts *options, verb client.Verb) *cobra.Command {
	var pf paramFlags
	name := strings.ToLower(string(verb))

	cmd := &cobra.Command{
		Use:   name + " <url>",
		Short: fmt.Sprintf("Send a %s request and print the JSON response", verb),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.load()
			if err != nil {
				return err
			}

			logger := opts.logger()
			defer func() { _ = logger.Sync() }()

			reg := prometheus.NewRegistry()
			clientOpts := []client.Option{client.WithLogger(logger)}
			if opts.cfg.Metrics.Enabled {
				clientOpts = append(clientOpts, client.WithMetrics(reg))
			}
			c := client.New(transport.NewResty(opts.fetcherConfig(logger)), clientOpts...)

			v, err := c.Do(cmd.Context(), verb, args[0], p)
			if opts.cfg.Metrics.Enabled {
				writeMetrics(cmd.ErrOrStderr(), reg)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), v, opts.compact)
		},
	}
	pf.register(cmd)
	return cmd
}

func encodeCmd() *cobra.Command {
	var pf paramFlags

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the query string GET would append for the given parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), params.Query(p))
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func (o *options) logger() *zap.Logger {
	cfg := o.cfg.LoggerConfig()
	if o.dev {
		cfg = logging.DevelopmentConfig()
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return logging.NewDefault()
	}
	return logger
}

func (o *options) fetcherConfig(logger *zap.Logger) transport.Config {
	cfg := o.cfg.FetcherConfig()
	cfg.Timeout = o.timeout
	cfg.Logger = logger
	return cfg
}

func writeJSON(w io.Writer, v jsonvalue.Value, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = v.MarshalJSON()
	} else {
		out, err = sonic.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeMetrics prints the counters gathered during the run, one per line.
func writeMetrics(w io.Writer, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			counter := metric.GetCounter()
			if counter == nil {
				continue
			}
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			fmt.Fprintf(w, "%s{%s} %g\n", family.GetName(), strings.Join(labels, ","), counter.GetValue())
		}
	}
}
