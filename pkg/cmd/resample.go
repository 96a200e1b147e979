package cmd

import (
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/indicators/pkg/config"
	"github.com/c9s/indicators/pkg/datasource/csvsource"
	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/types"
)

func init() {
	ResampleCmd.Flags().Duration("interval", time.Hour, "interval of the resampled bars")
	ResampleCmd.Flags().String("output", "data", "output directory")
	RootCmd.AddCommand(ResampleCmd)
}

var ResampleCmd = &cobra.Command{
	Use:          "resample [csv file]",
	Short:        "merge the bars of a CSV file into bars of a larger interval",
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

		interval, _ := cmd.Flags().GetDuration("interval")
		output, _ := cmd.Flags().GetString("output")

		fileName, err := resample(cfg, interval, output)
		if err != nil {
			return err
		}

		log.Infof("resampled bars written to %s", fileName)
		return nil
	},
}

func resample(cfg *config.Config, interval time.Duration, output string) (string, error) {
	if interval < cfg.Series.Interval {
		return "", errors.Errorf("interval %s is shorter than the series interval %s", interval, cfg.Series.Interval)
	}

	bars, err := readBars(cfg, cfg.NumFactory())
	if err != nil {
		return "", err
	}

	return csvsource.WriteBarsToFile(output, cfg.Series.Name+"-"+interval.String(), types.Resample(bars, interval))
}

func readBars(cfg *config.Config, factory num.Factory) ([]types.Bar, error) {
	reader, file, err := openBarReader(cfg, factory)
	if err != nil {
		return nil, err
	}

	defer func(c io.Closer) {
		//nolint:errcheck // Read ops only so safe to ignore err return
		c.Close()
	}(file)

	return reader.ReadAll(cfg.Series.Interval)
}
