// cmd/postfmt/main.go
package main

import (
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/postfmt/internal/app"
	"github.com/bethropolis/postfmt/internal/config"
	"github.com/bethropolis/postfmt/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)
	if cfg == nil {
		stlog.Fatalf("Failed to load configuration: %v", cfgErr)
	}

	// --- Logger Initialization ---
	out, closer, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log output: %v", err)
	}
	defer closer.Close()
	logger.Init(cfg.Logger, out)

	if cfgErr != nil {
		logger.Warnf("Using defaults, config not loaded: %v", cfgErr)
	}
	logger.Infof("Starting %s %s...", config.AppName, version)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	postApp, err := app.NewApp(app.Options{
		Config:     cfg,
		ConfigPath: config.Path(),
		FilePath:   filePath,
		ThemesDir:  themesDir(),
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		closer.Close()
		os.Exit(1)
	}

	if err := postApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closer.Close()
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// themesDir returns ~/.config/postfmt/themes, or "" when the user config
// directory is unknown.
func themesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, config.ConfigDirName, config.ThemesDirName)
}
