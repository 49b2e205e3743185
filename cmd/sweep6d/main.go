package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/kohutek/sweep6d/internal/config"
	"github.com/kohutek/sweep6d/internal/sweep"
)

var (
	log = logrus.New()

	configPath string
	presetName string
)

func init() {
	const (
		defaultConfigPath = "sweep6d.toml"
		configUsage       = "preset file path"
		presetUsage       = "preset to start with"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, configUsage)
	flag.StringVar(&configPath, "c", defaultConfigPath, configUsage+" (shorthand)")
	flag.StringVar(&presetName, "preset", "", presetUsage)
	flag.StringVar(&presetName, "p", "", presetUsage+" (shorthand)")
}

func setupLogging() {
	loggers := []*logrus.Logger{log, config.Log, sweep.Log}

	level := config.LogLevel()
	for _, l := range loggers {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	// Debug output tears the board apart mid-draw, so it can be routed to a
	// rotating file instead.
	if path, ok := config.LogFile(); ok {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to set up log file: ", err)
		}
		for _, l := range loggers {
			l.AddHook(hook)
			l.SetOutput(io.Discard)
		}
	}
}

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("unable to load .env: ", err)
	}

	setupLogging()

	presets, err := config.LoadPresets(configPath)
	if err != nil {
		log.Fatal(err)
	}

	s, err := newSession(presets, presetName)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(s.greeting())

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		out, quit := s.exec(scanner.Text())
		if out != "" {
			fmt.Println(out)
		}
		if quit {
			return
		}
		fmt.Print("> ")
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("unable to read input: ", err)
	}
}
