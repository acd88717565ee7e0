package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/config"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/observability"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/convert"
)

func main() {
	app := &cli.App{
		Name:      "convert",
		Usage:     "Derive laptop, tablet and mobile renditions of an image",
		ArgsUsage: "[input]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to the input image",
				Value:   "photo.jpg",
				EnvVars: []string{"CONVERT_INPUT"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Directory the renditions are written to",
				Value:   "images",
				EnvVars: []string{"CONVERT_OUTPUT_DIR"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger("convert", config.LogConfig{
		Level:  cfg.Log.Level,
		Format: observability.FormatConsole,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	input := c.String("input")
	if c.Args().Present() {
		input = c.Args().First()
	}

	svc := convert.NewService(cfg.Convert.Devices, storage.NewImageProcessor(), convert.Options{
		LocalQuality: cfg.Convert.LocalQuality,
	}, logger)

	renditions, err := svc.ConvertFile(c.Context, input, c.String("output"))
	if err != nil {
		logger.Error("error processing image", zap.String("input", input), zap.Error(err))
		return cli.Exit("conversion failed", 1)
	}

	logger.Info("conversion completed", zap.Int("renditions", len(renditions)))
	return nil
}
