package main

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"gvview/internal/app"
	"gvview/internal/config"
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gvview", "config.toml")
}

func main() {
	var configPath, logLevel, vectorMode string

	cliApp := &cli.App{
		Name:      "gvview",
		Usage:     "View images and graphviz renderings, refreshed as they change on disk",
		ArgsUsage: "[FILES...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "TOML settings file",
				Value:       defaultConfigPath(),
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "panic, fatal, error, warn, info, debug or trace",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "vector-mode",
				Usage:       "how svg files are shown: page or raster",
				Destination: &vectorMode,
			},
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if vectorMode != "" {
				cfg.Vector.Mode = vectorMode
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log.SetLevel(cfg.LogLevel())

			entry := log.WithField("config", configPath)
			entry.WithField("files", cCtx.NArg()).Debug("starting")
			return app.New(cfg, entry).Run(cCtx.Args().Slice())
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
