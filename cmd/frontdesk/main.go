// Command frontdesk serves the front-desk API used by the hotel terminals.
//
// Usage:
//
//	frontdesk [--config path] [--env-help] [--version]
//
// Exit codes: 0 = clean shutdown, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/waspershola/africa-lodge-90-sub002/internal/app"
	"github.com/waspershola/africa-lodge-90-sub002/internal/config"
)

func main() {
	var (
		configPath string
		envHelp    bool
		version    bool
	)
	flags := pflag.NewFlagSet("frontdesk", pflag.ContinueOnError)
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file (default $CONFIG_PATH or "+config.DefaultPath+")")
	flags.BoolVar(&envHelp, "env-help", false, "list the environment variables and exit")
	flags.BoolVar(&version, "version", false, "print the build version and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	switch {
	case version:
		fmt.Println(app.BuildVersion())
		return
	case envHelp:
		help, err := config.EnvHelp()
		if err != nil {
			fmt.Fprintf(os.Stderr, "frontdesk: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(help)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, configPath); err != nil {
		fmt.Fprintf(os.Stderr, "frontdesk: %v\n", err)
		os.Exit(1)
	}
}
