/*
Package main implements the polski-ls spell-check and completion server.

polski-ls provides spell-check diagnostics and fuzzy autocomplete for Polish,
driven by editor-protocol events over a MessagePack IPC stream. The engine is
a flat word-list matcher: a Unicode-aware position index, a word tokenizer, a
dictionary store with a bounded edit-distance matcher, and a deterministic
completion ranker. No morphological analysis is attempted.

# Usage

Start the server on stdin/stdout:

	polski-ls

Run in CLI mode for interactive testing:

	polski-ls -c -limit 10

Enable debug logging (stderr only, stdout carries the protocol):

	polski-ls -d

# Dictionaries

The embedded baseline word list ships in the binary. Every *.txt file under
the config directory (~/.config/polski-ls) is layered on top at startup, and
words added from the editor are appended to slownik.txt there. Word lists are
UTF-8, one word per line; '#' starts a comment and a leading '*' marks a
common word.

# Configuration

Runtime limits live in config.toml in the config directory:

	[server]
	max_results = 50
	min_prefix = 2
	max_candidates = 200
	max_actions = 10

The file is created with defaults if missing. The edit-distance budget
(1 edit for words up to 3 runes, 2 above) is fixed policy, not configuration.

# IPC Protocol

Requests are msgpack maps with an id and a method: "open", "change" and
"close" carry full document text and are answered with diagnostics; and
"complete" and "actions" query the engine at a (line, column) position with
columns in UTF-16 code units.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kaarrot/polski-ls/internal/cli"
	applog "github.com/kaarrot/polski-ls/internal/logger"
	"github.com/kaarrot/polski-ls/pkg/config"
	"github.com/kaarrot/polski-ls/pkg/dictionary"
	"github.com/kaarrot/polski-ls/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "polski-ls"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Exiting...")
		os.Exit(0)
	}()
}

// main wires config, dictionary and the chosen frontend together; the logic
// lives in the packages.
func main() {
	sigHandler()
	log.SetOutput(os.Stderr)

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 10, "Number of suggestions to show in CLI mode")
	dictDir := flag.String("dict", "", "Directory with user word lists (defaults to the config dir)")
	configPath := flag.String("config", "", "Path to config.toml (defaults to the config dir)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		log.Warnf("Could not resolve config dir: %v", err)
	}
	log.Debugf("Using config dir: %s", configDir)

	path := *configPath
	if path == "" {
		path, err = config.GetDefaultConfigPath()
		if err != nil {
			log.Warnf("Could not resolve config path: %v", err)
		}
	}
	appConfig, err := config.InitConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	wordsDir := *dictDir
	if wordsDir == "" {
		wordsDir = appConfig.Dict.Dir
	}
	if wordsDir == "" {
		wordsDir = configDir
	}

	dict := dictionary.WithUserExtensions(wordsDir)
	log.Debugf("Dictionary loaded: %d words", dict.Len())

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(dict, appConfig.Server.MinPrefix, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(dict, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printVersion displays some basic info about the binary.
func printVersion() {
	logger := applog.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("[ polski-ls ] Polish spell-check and completion server")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}
