// osc2doxy is a Doxygen input filter for Caché ObjectScript class
// files. It reads one .cls file and writes a pseudo-C++ stream with
// /// documentation markers to stdout, where Doxygen picks it up via
// FILTER_PATTERNS. With --debug the stream goes to
// <out-dir>/<basename>.cpp instead.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mkarpinski/osc2doxy/internal/config"
	"github.com/mkarpinski/osc2doxy/internal/osc"
	helpers "github.com/mkarpinski/osc2doxy/internal/utils"
)

var (
	flagDebug   bool
	flagVerbose bool
	flagOutDir  string
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "osc2doxy <class-file>",
	Short: "Filter a Caché ObjectScript class file into Doxygen-readable pseudo-C++",
	Args:  cobra.ExactArgs(1),
	RunE:  run,

	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "write the filtered stream to <out-dir>/<basename>.cpp instead of stdout")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "additional debug info on stderr")
	rootCmd.Flags().StringVar(&flagOutDir, "out-dir", "", "debug-mode output directory (overrides config)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a TOML config file")
}

func run(cmd *cobra.Command, args []string) error {
	// stdout belongs to the filtered stream, logging stays on stderr
	log.SetOutput(os.Stderr)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if flagConfig != "" {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return err
		}
	}
	if flagOutDir != "" {
		cfg.OutputDir = flagOutDir
	}

	input := args[0]
	log.Debugf("filtering %s (indent=%d)", input, cfg.Indent)

	res, err := osc.FilterFile(input, osc.WithIndent(cfg.Indent), osc.WithTypes(cfg.Types))
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		log.Warnf("%s: %s", input, w)
	}
	if cfg.Strict && len(res.Warnings) > 0 {
		return fmt.Errorf("%s: %d extraction warning(s) in strict mode", input, len(res.Warnings))
	}

	if flagDebug {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return err
		}
		out := helpers.OutputPath(cfg.OutputDir, input)
		log.Infof("writing filtered ObjectScript to %s", out)
		return os.WriteFile(out, []byte(res.Output), 0o644)
	}

	_, err = os.Stdout.Write([]byte(res.Output))
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetOutput(os.Stderr)
		log.Error(err)
		os.Exit(1)
	}
}
