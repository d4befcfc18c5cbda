package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ben0x539/comik"
	"github.com/ben0x539/comik/internal/config"
	"github.com/ben0x539/comik/resource"
	"github.com/ben0x539/comik/viewer"
)

// app carries settings resolved in PersistentPreRunE to the subcommands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		logLevel     string
		logFormat    string
		imagesOnly   bool
		maxEntrySize uint64
	)

	root := &cobra.Command{
		Use:   "comik",
		Short: "Inspect comic archives and export their pages",
		Long: `comik reads zip/cbz and rar/cbr comic archives.

Pages are the archive entries sorted by name. Settings come from the
environment (COMIK_LOG_LEVEL, COMIK_LOG_FORMAT, COMIK_MAX_ENTRY_SIZE,
COMIK_MAX_PIXELS, COMIK_IMAGES_ONLY) and may be overridden by flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("images-only") {
				cfg.ImagesOnly = imagesOnly
			}
			if flags.Changed("max-entry-size") {
				cfg.MaxEntrySize = maxEntrySize
			}
			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	pf.BoolVar(&imagesOnly, "images-only", false, "hide entries without an image extension")
	pf.Uint64Var(&maxEntrySize, "max-entry-size", 512<<20, "largest page entry to extract, in bytes")

	root.AddCommand(newLsCmd(a), newInfoCmd(a), newExportCmd(a))
	return root
}

func (a *app) comicOptions() []comik.Option {
	return append(a.cfg.ComicOptions(), comik.WithLogger(a.logger))
}

func (a *app) session() *viewer.Session {
	return viewer.New(
		viewer.WithLogger(a.logger),
		viewer.WithComicOptions(a.cfg.ComicOptions()...),
		viewer.WithTextureLoader(resource.TextureLoader{MaxPixels: a.cfg.MaxPixels}),
	)
}

func checkSupported(paths []string) error {
	for _, p := range paths {
		if !comik.IsSupported(p) {
			return fmt.Errorf("%s: %w (want one of %v)", p, comik.ErrUnsupportedFormat, comik.SupportedExtensions())
		}
	}
	return nil
}
