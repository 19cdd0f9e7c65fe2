package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	relay "github.com/zing-dev/relay-k8056-sdk"
	"github.com/zing-dev/relay-k8056-sdk/internal/config"
	"github.com/zing-dev/relay-k8056-sdk/internal/logging"
)

var (
	configPath string
	device     string
	repeat     int
	wait       string
	evalOnly   bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "Config file (yaml, toml or json).")
	flag.StringVar(&device, "device", "", "Serial port, e.g. /dev/ttyUSB0.")
	flag.IntVar(&repeat, "repeat", 0, "Extra transmissions of every frame.")
	flag.StringVar(&wait, "wait", "", "Delay after every frame, seconds or duration.")
	flag.BoolVar(&evalOnly, "e", false, "Run the command given as arguments and exit.")
}

// overrides collects the flags explicitly set on the command line.
func overrides() map[string]interface{} {
	m := make(map[string]interface{})
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			m["device"] = device
		case "repeat":
			m["repeat"] = repeat
		case "wait":
			m["wait"] = wait
		}
	})
	return m
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath, overrides())
	if err != nil {
		return err
	}
	logger := logging.InitLogger(cfg.Logging)
	defer logger.Sync()

	shell := newShell()
	if cfg.Device == "" && !evalOnly {
		shell.Print("Enter serial port device file: ")
		cfg.Device = strings.TrimSpace(shell.ReadLine())
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	handler := relay.NewClientHandler(cfg.Device)
	handler.Logger = logger.Named("serial")
	if err = handler.Connect(); err != nil {
		return fmt.Errorf("open %s: %w", cfg.Device, err)
	}
	client := relay.NewClient(handler, relay.WithRepeat(cfg.Repeat), relay.WithWait(cfg.Wait))
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("close serial port", zap.Error(err))
		}
	}()
	settle()

	logger.Info("connected",
		zap.String("device", cfg.Device),
		zap.Int("repeat", cfg.Repeat),
		zap.Duration("wait", cfg.Wait))

	shell.Set(clientKey, client)
	if evalOnly {
		if err = shell.Process(flag.Args()...); err != nil {
			return err
		}
		if err, ok := shell.Get(errKey).(error); ok && err != nil {
			return err
		}
		return nil
	}
	shell.SetPrompt("k8056> ")
	shell.Run()
	return nil
}
