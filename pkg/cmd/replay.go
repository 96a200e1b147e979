package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/indicators/pkg/cache"
	"github.com/c9s/indicators/pkg/cmd/cmdutil"
	"github.com/c9s/indicators/pkg/config"
	"github.com/c9s/indicators/pkg/metrics"
	"github.com/c9s/indicators/pkg/types"
)

func init() {
	cmdutil.ReplayFlags(ReplayCmd.Flags())
	RootCmd.AddCommand(ReplayCmd)
}

var ReplayCmd = &cobra.Command{
	Use:          "replay [csv file]",
	Short:        "replay a CSV file bar by bar and log the latest indicator values",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}

		if len(args) > 0 {
			cfg.Source.File = args[0]
		}

		intrabar, _ := cmd.Flags().GetBool("intrabar")
		delay, _ := cmd.Flags().GetDuration("delay")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		collector := metrics.NewIndicatorCollector()
		if metricsAddr == "" {
			if _, err := replay(ctx, cfg, collector, replayOptions{Intrabar: intrabar, Delay: delay}); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}

		if err := prometheus.Register(collector); err != nil {
			return errors.Wrap(err, "unable to register indicator collector")
		}

		server := &http.Server{Addr: metricsAddr, Handler: promhttp.Handler()}

		eg, ctx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			log.Infof("serving metrics on %s/metrics", metricsAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		eg.Go(func() error {
			if _, err := replay(ctx, cfg, collector, replayOptions{Intrabar: intrabar, Delay: delay}); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			log.Info("replay finished, metrics are served until interrupted")
			<-ctx.Done()
			return nil
		})

		eg.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})

		return eg.Wait()
	},
}

type replayOptions struct {
	Intrabar bool
	Delay    time.Duration
}

// replay feeds the configured bars one by one and evaluates the latest value
// of every configured indicator after each update. It returns the graph it
// built.
func replay(ctx context.Context, cfg *config.Config, collector *metrics.IndicatorCollector, opts replayOptions) (*Graph, error) {
	bars, err := newBarSeries(cfg)
	if err != nil {
		return nil, err
	}

	all, err := readBars(cfg, bars.NumFactory())
	if err != nil {
		return nil, err
	}

	graph, err := BuildGraph(cfg, bars, cache.NewInterner[string, Node]())
	if err != nil {
		return nil, err
	}

	names, nodes, err := graph.Columns(cfg.Output.Columns)
	if err != nil {
		return nil, err
	}

	for _, n := range graph.Distinct() {
		collector.Add(n.Key, n.Indicator)
	}

	update := func() {
		collector.Lock()
		defer collector.Unlock()

		fields := log.Fields{"index": bars.EndIndex()}
		for i, n := range nodes {
			v := n.Indicator.Value(bars.EndIndex())
			fields[names[i]] = v.String()
			metrics.SetIndicatorValue(bars.Name(), names[i], v.Float64())
		}
		metrics.UpdateSeries(bars)
		log.WithFields(fields).Info(bars.Last().String())
	}

	for _, b := range all {
		select {
		case <-ctx.Done():
			return graph, ctx.Err()
		default:
		}

		if opts.Intrabar {
			bars.Add(openingBar(b))
			update()
			bars.ReplaceLast(b)
		} else {
			bars.Add(b)
		}
		update()

		if opts.Delay > 0 {
			select {
			case <-ctx.Done():
				return graph, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}
	}

	return graph, nil
}

// openingBar is the bar as it looks right after it opened.
func openingBar(b types.Bar) types.Bar {
	f := b.Open.Factory()
	return types.NewBar(b.Start, b.Duration(), b.Open, b.Open, b.Open, b.Open, f.Zero(), f.One())
}
