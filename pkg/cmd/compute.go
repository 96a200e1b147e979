package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/indicators/pkg/cache"
	"github.com/c9s/indicators/pkg/chart"
	"github.com/c9s/indicators/pkg/cmd/cmdutil"
	"github.com/c9s/indicators/pkg/config"
	"github.com/c9s/indicators/pkg/datasource/csvsource"
	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/style"
)

func init() {
	cmdutil.OutputFlags(ComputeCmd.Flags())
	RootCmd.AddCommand(ComputeCmd)
}

var ComputeCmd = &cobra.Command{
	Use:          "compute [csv file]",
	Short:        "compute the configured indicators over a CSV file",
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

		rows, _ := cmd.Flags().GetInt("rows")
		summary, _ := cmd.Flags().GetBool("summary")
		chartFile, _ := cmd.Flags().GetString("chart")

		return compute(cmd.OutOrStdout(), cfg, computeOptions{
			Rows:      rows,
			Summary:   summary,
			ChartFile: chartFile,
			WithColor: !viper.GetBool("no-color") && !color.NoColor,
		})
	},
}

type computeOptions struct {
	Rows      int
	Summary   bool
	ChartFile string
	WithColor bool
}

func compute(w io.Writer, cfg *config.Config, opts computeOptions) error {
	bars, err := newBarSeries(cfg)
	if err != nil {
		return err
	}

	reader, file, err := openBarReader(cfg, bars.NumFactory())
	if err != nil {
		return err
	}
	//nolint:errcheck // Read ops only so safe to ignore err return
	defer file.Close()

	n, err := csvsource.Feed(bars, reader, cfg.Series.Interval)
	if err != nil {
		return err
	}

	log.Infof("read %d bars from %s, %d retained", n, cfg.Source.File, bars.Length())

	graph, err := BuildGraph(cfg, bars, cache.NewInterner[string, Node]())
	if err != nil {
		return err
	}

	names, nodes, err := graph.Columns(cfg.Output.Columns)
	if err != nil {
		return err
	}

	rows := opts.Rows
	if rows <= 0 {
		rows = cfg.Output.Rows
	}

	var tableStyle *table.Style
	if opts.WithColor {
		tableStyle = style.NewDefaultTableStyle()
	}

	write := func(w io.Writer, format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
	if opts.WithColor {
		write = color.New(color.FgHiYellow).FprintfFunc()
	}

	if bars.IsEmpty() {
		write(w, "---- %s: no bars ---\n", bars.Name())
		return nil
	}

	write(w, "---- %s ---\n", bars.Name())

	t := style.NewTable(w, tableStyle, append([]string{"index", "start"}, names...)...)
	first := max(bars.StartIndex(), bars.EndIndex()-int64(rows)+1)
	for i := first; i <= bars.EndIndex(); i++ {
		row := table.Row{i, bars.Get(i).Start.Format("2006-01-02 15:04")}
		for _, n := range nodes {
			var previous num.Num
			if i > bars.StartIndex() {
				previous = n.Indicator.Value(i - 1)
			}
			cell := style.ValueString(n.Indicator.Value(i), previous, opts.WithColor)
			if !n.Indicator.IsStableAt(i) {
				cell += "*"
			}
			row = append(row, cell)
		}
		t.AppendRow(row)
	}
	t.Render()

	if opts.Summary {
		printSummary(w, tableStyle, graph, names, nodes)
	}

	if opts.ChartFile != "" {
		canvas := chart.NewCanvas(bars.Name(), cfg.Series.Interval)
		for i, n := range nodes {
			canvas.Plot(names[i], n.Indicator, bars, rows)
		}

		out, err := os.Create(opts.ChartFile)
		if err != nil {
			return errors.Wrapf(err, "cannot create chart file")
		}
		defer out.Close()

		if err := canvas.Render(out); err != nil {
			return err
		}
	}

	return nil
}

// printSummary prints mean and standard deviation of the stable values
// retained by the series.
func printSummary(w io.Writer, tableStyle *table.Style, graph *Graph, names []string, nodes []*Node) {
	bars := graph.Bars
	t := style.NewTable(w, tableStyle, "indicator", "values", "mean", "stddev", "calculations")
	for i, n := range nodes {
		var values []float64
		for index := bars.StartIndex(); index <= bars.EndIndex(); index++ {
			if !n.Indicator.IsStableAt(index) {
				continue
			}
			if v := n.Indicator.Value(index); !v.IsNaN() {
				values = append(values, v.Float64())
			}
		}

		mean, stddev := stat.MeanStdDev(values, nil)
		t.AppendRow(table.Row{names[i], len(values), mean, stddev, n.Indicator.Stats().Calculations})
	}
	t.Render()
}
