package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/region-recolor/internal/recolor"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("recolor %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("recolor - recolor image regions into red, black, green and white variants")
			fmt.Println()
			fmt.Println("Usage: recolor [options] [source]")
			fmt.Println()
			fmt.Printf("  source           Image to process (default %s)\n", recolor.DefaultSource)
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  RECOLOR_LOG_LEVEL=debug           Enable debug logging")
			fmt.Println("  RECOLOR_PRESET=underscore|hyphen  Output naming and boost schedule (default underscore)")
			fmt.Println("  RECOLOR_REGIONS=240|960|full      Region set (default 240)")
			fmt.Println("  RECOLOR_FORMAT=text|json          Result output format (default text)")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	format := os.Getenv("RECOLOR_FORMAT")
	if err := checkFormat(format); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	debug := log.New(io.Discard, "", 0)
	if os.Getenv("RECOLOR_LOG_LEVEL") == "debug" {
		debug = log.Default()
		log.Printf("recolor v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	result, err := recolor.Process(cfg, debug)
	if err != nil {
		log.Fatalf("Recolor error: %v", err)
	}
	if err := writeResult(os.Stdout, result, format); err != nil {
		log.Fatalf("Output error: %v", err)
	}
}

// writeResult prints the written paths one per line, or the whole result as
// JSON when format is "json".
func writeResult(w io.Writer, result *recolor.Result, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	for _, out := range result.Outputs {
		if _, err := fmt.Fprintln(w, out.Path); err != nil {
			return err
		}
	}
	return nil
}

func checkFormat(format string) error {
	switch format {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// loadConfig builds the run configuration from positional arguments and the
// environment.
func loadConfig(args []string, getenv func(string) string) (recolor.Config, error) {
	preset := getenv("RECOLOR_PRESET")
	if preset == "" {
		preset = "underscore"
	}
	cfg, err := recolor.Preset(preset)
	if err != nil {
		return recolor.Config{}, err
	}

	if set := getenv("RECOLOR_REGIONS"); set != "" {
		regions, err := recolor.RegionSet(set)
		if err != nil {
			return recolor.Config{}, err
		}
		cfg = cfg.WithRegions(regions)
	}

	switch len(args) {
	case 0:
	case 1:
		cfg = cfg.WithSource(args[0])
	default:
		return recolor.Config{}, fmt.Errorf("expected at most one source path, got %d arguments", len(args))
	}

	return cfg, cfg.Validate()
}
