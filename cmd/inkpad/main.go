// Command inkpad places styled text annotations on a canvas in the
// terminal and exports them as PNG.
package main

import (
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/inkpad/internal/app"
	"github.com/bethropolis/inkpad/internal/config"
	"github.com/bethropolis/inkpad/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var flags config.Flags
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	rest, err := flags.ParseFlags(fs, args)
	if err != nil {
		stlog.Printf("Error parsing flags: %v", err)
		return 2
	}

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return 0
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, &flags)

	logCloser, err := logger.Init(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logCloser.Close()
	if *flags.DebugLog {
		logger.SetFilterDebug(true)
	}
	if cfgErr != nil {
		logger.Warnf("Config: %v, using defaults", cfgErr)
	}

	var filePath string
	if len(rest) > 0 {
		filePath = rest[0]
	}

	if out := *flags.Export; out != "" {
		if filePath == "" {
			fmt.Fprintln(os.Stderr, "-export needs a document path")
			return 2
		}
		if err := app.ExportFile(cfg, filePath, out); err != nil {
			logger.Errorf("Export failed: %v", err)
			fmt.Fprintf(os.Stderr, "export: %v\n", err)
			return 1
		}
		return 0
	}

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	inkpadApp, err := app.NewApp(cfg, filePath, nil)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	if err := inkpadApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
