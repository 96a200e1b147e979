package cmdutil

import "github.com/spf13/pflag"

// OutputFlags defines the flags of the commands that print indicator values.
func OutputFlags(flags *pflag.FlagSet) {
	flags.Int("rows", 0, "number of latest rows to print, the config value when zero")
	flags.Bool("summary", false, "print mean and standard deviation of every column")
	flags.String("chart", "", "render the columns into this PNG file")
}

// ReplayFlags defines the flags of the replay command.
func ReplayFlags(flags *pflag.FlagSet) {
	flags.Bool("intrabar", false, "add every bar as an in-progress bar first and revise it with the closed bar")
	flags.Duration("delay", 0, "delay between bars")
	flags.String("metrics-addr", "", "serve prometheus metrics on this address, e.g. :9090")
}
