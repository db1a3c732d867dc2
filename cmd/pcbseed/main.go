// Package main provides the CLI entry point for pcbseed-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/config"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/fetch"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/output"
	"github.com/ukaji3/pcbseed-go/pkg/utils"
)

const defaultConfigPath = "pcbseed.yaml"

// generateFlags are the command-line overrides applied on top of the config file.
type generateFlags struct {
	configPath    string
	atombergPath  string
	bajajPath     string
	outputPath    string
	pretty        bool
	sqlitePath    string
	referenceTime string
	debug         bool
	keepGoing     bool
}

func (f *generateFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", defaultConfigPath, "Config file path (built-in defaults when the default file is absent)")
	fs.StringVar(&f.atombergPath, "atomberg", "", "Path to the Atomberg workbook")
	fs.StringVar(&f.bajajPath, "bajaj", "", "Path to the Bajaj workbook")
	fs.StringVarP(&f.outputPath, "output", "o", "", "Output JSON path (default: "+config.DefaultOutputPath+")")
	fs.BoolVar(&f.pretty, "pretty", true, "Pretty-print JSON output")
	fs.StringVar(&f.sqlitePath, "sqlite", "", "Also persist the seed to this SQLite database")
	fs.StringVar(&f.referenceTime, "reference-time", "", "RFC 3339 timestamp stamped on every entity (default: now)")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.keepGoing, "continue-on-source-error", false, "Skip sources that cannot be read instead of aborting")
}

func newRootCommand() *cobra.Command {
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "pcbseed",
		Short: "Generate inventory seed data from PCB consumption workbooks",
		Long: `pcbseed-go reads the Atomberg and Bajaj consumption workbooks (.xlsx/.xlsm),
aggregates component usage and writes a seed dataset as JSON.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}
	flags.bind(rootCmd.Flags())
	rootCmd.AddCommand(newInspectCommand())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config file. The default path may be absent, in which
// case the built-in configuration is used; an explicit path must exist.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlags overlays changed flags onto cfg.
func applyFlags(cfg *config.Config, fs *pflag.FlagSet, flags *generateFlags) error {
	overrides := map[string]string{"atomberg": flags.atombergPath, "bajaj": flags.bajajPath}
	for name, path := range overrides {
		if !fs.Changed(name) {
			continue
		}
		found := false
		for i := range cfg.Sources {
			if cfg.Sources[i].Name == name {
				cfg.Sources[i].Path = path
				found = true
			}
		}
		if !found {
			return fmt.Errorf("--%s given but no %q source is configured", name, name)
		}
	}

	if fs.Changed("output") {
		cfg.Output.JSONPath = flags.outputPath
	}
	if fs.Changed("pretty") {
		cfg.Output.Pretty = &flags.pretty
	}
	if fs.Changed("sqlite") {
		cfg.Output.SQLitePath = flags.sqlitePath
	}
	if fs.Changed("reference-time") {
		cfg.ReferenceTime = flags.referenceTime
	}
	if flags.debug {
		cfg.Debug = true
	}
	if flags.keepGoing {
		cfg.ContinueOnSourceError = true
	}
	return cfg.Validate()
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	cfg, err := loadConfig(flags.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cfg, cmd.Flags(), flags); err != nil {
		return err
	}
	reference, err := cfg.Reference()
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	ctx := cmd.Context()
	fetcher := fetch.New(fetch.WithTimeout(cfg.Fetch.Timeout), fetch.WithLogger(logger))

	var inputs []pcbseed.Input
	for _, src := range cfg.Sources {
		data, err := fetcher.Fetch(ctx, src.Location())
		if err != nil {
			srcErr := pcbseed.NewSourceError(src.Name, "fetch", err)
			if !cfg.ContinueOnSourceError {
				return srcErr
			}
			logger.Warn("source skipped", zap.String("source", src.Name), zap.Error(err))
			continue
		}
		inputs = append(inputs, pcbseed.Input{Schema: src.Schema, Data: data})
	}

	result, err := pcbseed.Generate(inputs, pcbseed.Options{
		ReferenceTime:         reference,
		ContinueOnSourceError: cfg.ContinueOnSourceError,
		Logger:                logger,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := output.WriteJSONFile(cfg.Output.JSONPath, result.Seed, cfg.Output.PrettyOrDefault()); err != nil {
		return err
	}

	if cfg.Output.SQLitePath != "" {
		store, err := output.NewSQLiteStore(cfg.Output.SQLitePath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(ctx, result.RunID, result.Seed); err != nil {
			return err
		}
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote seed data: components=%d, pcbs=%d, consumptionRows=%d, productionEntries=%d -> %s\n",
		len(result.Seed.Components),
		len(result.Seed.PCBs),
		len(result.Seed.ConsumptionHistory),
		len(result.Seed.ProductionEntries),
		cfg.Output.JSONPath,
	)
	return nil
}
