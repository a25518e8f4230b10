package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dep-reconcile/handlers"
	"dep-reconcile/utils"
)

// ---------------------------
// Configuration
// ---------------------------
//
// Precedence: defaults < -config file < .env / environment < flags.
// Usage and parse errors go to usageOut.
func loadConfig(args []string, usageOut io.Writer) (*utils.Config, error) {
	fs := flag.NewFlagSet("dep-reconcile", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: dep-reconcile [flags]")
		fs.PrintDefaults()
	}

	configFile := fs.String("config", "", "Path to a YAML or TOML config file")
	mavenIn := fs.String("mvnDeps", "", "mvn dependency:analyze output (default "+utils.DefaultMavenUnusedDeps+")")
	unusedOut := fs.String("unusedDeps", "", "Formatted unused jars (default "+utils.DefaultUnusedDeps+")")
	jdepsIn := fs.String("jdepsDeps", "", "jdeps output (default "+utils.DefaultJdepsOutput+")")
	usedOut := fs.String("usedDeps", "", "Formatted used jars (default "+utils.DefaultUsedDeps+")")
	curations := fs.String("curations", "", "YAML file of jars expected to be reported unused")
	backupDir := fs.String("backup", "", "Directory to store backups of previous output files")
	logDir := fs.String("logs", "", "Directory for the run log file")
	reportJSON := fs.String("json", "", "Also write the report as JSON to this path")
	allJars := fs.Bool("all-jars", false, "Keep every .jar token of a jdeps line, not only the first")
	noColor := fs.Bool("no-color", false, "Disable ANSI colors")
	verbose := fs.Bool("v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected positional arguments: %v", fs.Args())
	}

	cfg := utils.DefaultConfig()
	if *configFile != "" {
		if err := utils.LoadConfigFile(cfg, *configFile); err != nil {
			return nil, err
		}
	}
	if err := utils.LoadEnv(cfg); err != nil {
		return nil, err
	}

	// only flags given on the command line override earlier layers
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mvnDeps":
			cfg.MavenUnusedDeps = *mavenIn
		case "unusedDeps":
			cfg.UnusedDeps = *unusedOut
		case "jdepsDeps":
			cfg.JdepsOutput = *jdepsIn
		case "usedDeps":
			cfg.UsedDeps = *usedOut
		case "curations":
			cfg.CurationFile = *curations
		case "backup":
			cfg.BackupDir = *backupDir
		case "logs":
			cfg.LogDir = *logDir
		case "json":
			cfg.ReportJSON = *reportJSON
		case "all-jars":
			cfg.AllJarsPerLine = *allJars
		case "no-color":
			cfg.NoColor = *noColor
		case "v":
			cfg.Verbose = *verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ---------------------------
// Run pipeline
// ---------------------------
func run(cfg *utils.Config, logger *utils.Logger, printer utils.Printer) (utils.Result, error) {
	jobs := handlers.GetHandlers(cfg)

	for _, job := range jobs {
		name := job.Handler.Name()
		if cfg.Verbose {
			logger.Infof("Handler %s: reading %s", name, job.Input)
		}

		jars, err := job.Handler.Scan(job.Input)
		if err != nil {
			return utils.Result{}, err
		}
		if err := job.Handler.WriteOutput(jars, job.Output, cfg.BackupDir); err != nil {
			return utils.Result{}, err
		}
		printer.Bold("Formatted %s dependencies written to %s...", job.Label, job.Output)
	}

	res, err := utils.CompareDepLists(cfg.UnusedDeps, cfg.UsedDeps)
	if err != nil {
		return utils.Result{}, err
	}

	if cfg.CurationFile != "" {
		rules, err := utils.LoadCurations(cfg.CurationFile)
		if err != nil {
			return utils.Result{}, err
		}
		res = utils.ApplyCurations(res, rules)
		if cfg.Verbose {
			logger.Infof("Applied %d curation rules, %d jars curated", len(rules), len(res.Curated))
		}
	}

	printer.PrintReport(res)

	if cfg.ReportJSON != "" {
		if err := utils.WriteJSONReport(cfg.ReportJSON, res); err != nil {
			return utils.Result{}, err
		}
		if cfg.Verbose {
			logger.Infof("JSON report written to %s", cfg.ReportJSON)
		}
	}

	return res, nil
}

func printSummary(out io.Writer, cfg *utils.Config, res utils.Result) {
	fmt.Fprintln(out, "\n----- Dependency Reconcile Summary -----")
	for _, job := range handlers.GetHandlers(cfg) {
		name := job.Handler.Name()
		fmt.Fprintf(out, "- %s: %d jars -> %s\n", name, utils.GetWrittenCount(name), job.Output)
	}
	fmt.Fprintf(out, "- unused=%d used=%d shared=%d curated=%d\n",
		len(res.Unused), len(res.Used), len(res.Shared), len(res.Curated))
}

// argsExitCode reports a loadConfig error; -h is a successful exit.
func argsExitCode(err error, out io.Writer) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintf(out, "invalid arguments: %v\n", err)
	return 1
}

// ---------------------------
// Main
// ---------------------------
func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(argsExitCode(err, os.Stderr))
	}

	logger, err := utils.NewLogger(cfg.LogDir, os.Stderr)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	printer := utils.Printer{Out: os.Stdout, Color: !cfg.NoColor}

	res, err := run(cfg, logger, printer)
	if err != nil {
		logger.Errorf("%v", err)
		logger.Close()
		os.Exit(1)
	}

	if cfg.Verbose {
		printSummary(os.Stdout, cfg, res)
		logger.Infof("Total elapsed time: %s", time.Since(start))
	}

	logger.Close()
}
