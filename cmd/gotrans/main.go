// Command gotrans looks up a word or phrase with one translation engine.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ZaguanLabs/gotrans"
	"github.com/ZaguanLabs/gotrans/internal/config"
	"github.com/ZaguanLabs/gotrans/internal/logging"
	"github.com/ZaguanLabs/gotrans/provider"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = gotrans.FullVersion()
	buildDate = gotrans.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet(gotrans.Name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-e engine] [-f from] [-t to] text...\n\n", gotrans.Name)
		fs.PrintDefaults()
	}

	// Flags
	engine := fs.StringP("engine", "e", "", "Translate engine: bing, ciba, youdao (default: GOTRANS_ENGINE or youdao)")
	from := fs.StringP("from", "f", "", "Source language (default: GOTRANS_FROM or en)")
	to := fs.StringP("to", "t", "", "Target language (default: GOTRANS_TO or zh)")
	envFile := fs.String("env", ".env", "Path to an optional .env file")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	listEngines := fs.Bool("list", false, "List available engines")
	showVersion := fs.BoolP("version", "v", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", gotrans.Name, version)
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if *noColor {
		color.NoColor = true
	}

	if err := config.LoadEnvFile(*envFile, fs.Changed("env")); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the environment
	if fs.Changed("engine") {
		cfg.Engine = *engine
	}
	if fs.Changed("from") {
		cfg.SourceLang = *from
	}
	if fs.Changed("to") {
		cfg.TargetLang = *to
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel, stderr)
	if err != nil {
		return err
	}

	registry := provider.DefaultRegistry(provider.RegistryConfig{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Bing:       provider.BingConfig{BaseURL: cfg.BingURL},
		Ciba:       provider.CibaConfig{BaseURL: cfg.CibaURL},
		Youdao:     provider.YoudaoConfig{BaseURL: cfg.YoudaoURL},
	})
	translator := gotrans.NewTranslator(registry, gotrans.WithLogger(logger))

	if *listEngines {
		renderEngines(stdout, translator.Engines(), cfg.Engine)
		return nil
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		fs.Usage()
		return fmt.Errorf("text is required")
	}

	result, err := translator.Translate(context.Background(), gotrans.Request{
		Engine:     cfg.Engine,
		Text:       text,
		SourceLang: cfg.SourceLang,
		TargetLang: cfg.TargetLang,
	})
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	if *jsonOutput {
		return outputJSON(stdout, result)
	}

	render(stdout, result, cfg.SourceLang, cfg.TargetLang)
	return nil
}
