package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ben0x539/comik"
)

func newLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls ARCHIVE...",
		Short: "List the pages of each archive in reading order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSupported(args); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range args {
				c, err := comik.OpenComic(path, a.comicOptions()...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%d pages)\n", c.Title(), c.Len())
				for i, name := range c.Index().All() {
					fmt.Fprintf(out, "%6d  %s\n", i, name)
				}
				if err := c.Close(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info ARCHIVE...",
		Short: "Report the format and size of every page",
		Long: `info reads the image header of every page of every archive and prints
its format and dimensions without decoding pixels. Pages that are not
images are reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSupported(args); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				c, err := comik.OpenComic(path, a.comicOptions()...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n", c.Title())
				for i, name := range c.Index().All() {
					cfg, format, err := c.PageConfig(i)
					if err != nil {
						failed++
						fmt.Fprintf(out, "%6d  %s  error: %v\n", i, name, err)
						continue
					}
					fmt.Fprintf(out, "%6d  %s  %dx%d  %s\n", i, name, cfg.Width, cfg.Height, format)
				}
				if err := c.Close(); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d page(s) failed", failed)
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export ARCHIVE PAGE",
		Short: "Write one page as PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSupported(args[:1]); err != nil {
				return err
			}
			pageIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("page %q: %w", args[1], err)
			}

			s := a.session()
			defer s.Close()
			if err := s.Reset("", args[:1]); err != nil {
				return err
			}
			tex, err := s.Frame(0, pageIndex)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				if err := png.Encode(cmd.OutOrStdout(), tex.Image()); err != nil {
					return fmt.Errorf("encode png: %w", err)
				}
				return nil
			}

			f, err := os.Create(output) //nolint:gosec // User-provided path is intentional
			if err != nil {
				return err
			}
			if err := png.Encode(f, tex.Image()); err != nil {
				_ = f.Close()
				return fmt.Errorf("encode png: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}
