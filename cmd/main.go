package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	cache "github.com/krisalay/policy-cache"
	evict "github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/metrics"
	"github.com/krisalay/policy-cache/notify"
	"github.com/krisalay/policy-cache/scenario"
)

var (
	policyName string
	capacity   int
	logLevel   string
	quiet      bool
	all        bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "policycache",
	Short: "Exercise bounded in-memory caches with FIFO, LIFO, LRU and LFU eviction",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
	SilenceUsage: true,
}

// demoCmd replays the reference walkthrough of a policy
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the reference walkthrough for a policy (capacity 4)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		policies := evict.PolicyTypes()
		if !all {
			p, err := evict.ParsePolicyType(policyName)
			if err != nil {
				return err
			}
			policies = []evict.PolicyType{p}
		}

		for _, p := range policies {
			fmt.Fprintf(cmd.OutOrStdout(), "\n==================== %s ====================\n", p)
			if err := execute(cmd.OutOrStdout(), p, cache.MaxItems, scenario.Reference(p)); err != nil {
				return err
			}
		}
		return nil
	},
}

// runCmd executes operations given on the command line
var runCmd = &cobra.Command{
	Use:     "run OP...",
	Short:   "Run operations: put:KEY=VALUE, get:KEY, print",
	Example: "  policycache run --policy lfu put:A=Hello put:B=World get:A print",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := evict.ParsePolicyType(policyName)
		if err != nil {
			return err
		}
		ops, err := scenario.ParseAll(args)
		if err != nil {
			return err
		}
		return execute(cmd.OutOrStdout(), p, capacity, ops)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&policyName, "policy", "p", "lru", "eviction policy: "+policyList())
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not print metrics after the run")

	runCmd.Flags().IntVarP(&capacity, "capacity", "c", cache.MaxItems, "maximum number of keys")
	demoCmd.Flags().BoolVar(&all, "all", false, "replay every policy")

	rootCmd.AddCommand(demoCmd, runCmd)
}

func policyList() string {
	names := make([]string, 0, len(evict.PolicyTypes()))
	for _, p := range evict.PolicyTypes() {
		names = append(names, strings.ToLower(string(p)))
	}
	return strings.Join(names, ", ")
}

// execute builds a cache for p, applies ops and reports metrics.
// Eviction notices go to out as "DISCARD: <key>" and to the logger at debug level.
func execute(out io.Writer, p evict.PolicyType, capacity int, ops []scenario.Op) error {
	reg := prometheus.NewRegistry()

	logNotifier := notify.NewLogger(slog.Default(), "policy", string(p))
	logNotifier.Level = slog.LevelDebug

	c, err := cache.New(p,
		cache.WithCapacity(capacity),
		cache.WithNotifier(notify.Multi(notify.Writer{W: out}, logNotifier)),
		cache.WithMetrics(metrics.NewPrometheus(reg, "policycache", string(p))),
	)
	if err != nil {
		return err
	}

	slog.Info("cache ready", "policy", p, "capacity", c.Capacity(), "ops", len(ops))
	scenario.Run(c, ops, out)

	if !quiet {
		return printMetrics(out, reg)
	}
	return nil
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\n-------------------- METRICS --------------------")
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "%-32s %v\n", mf.GetName(), m.GetCounter().GetValue())
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
