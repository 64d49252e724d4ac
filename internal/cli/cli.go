// Package cli is the website command line: serve the site, export it to
// static files, or inspect the page registry.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/export"
	"github.com/northwind-studio/website/internal/handlers"
	"github.com/northwind-studio/website/internal/imageload"
	"github.com/northwind-studio/website/internal/pagetemplate"
	"github.com/northwind-studio/website/internal/ratelimit"
	"github.com/northwind-studio/website/internal/scheduler"
	"github.com/northwind-studio/website/internal/server"
	"github.com/northwind-studio/website/internal/submission"
	"github.com/northwind-studio/website/internal/wizard"
	"github.com/northwind-studio/website/pkg/logger"
)

// Execute runs the root command against os.Args.
func Execute(static fs.FS) {
	if err := NewRootCmd(static).Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd(static fs.FS) *cobra.Command {
	root := &cobra.Command{
		Use:          "website",
		Short:        "Northwind Studio marketing website",
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(static),
		newExportCmd(static),
		newPagesCmd(),
	)
	return root
}

func newServeCmd(static fs.FS) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(appOptions(static)...)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

// appOptions assembles the server application.
func appOptions(static fs.FS) []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Provide(func() fs.FS { return static }),

		// Infrastructure
		logger.Module,
		config.Module,
		server.Module,
		scheduler.Module,

		// Site
		content.Module,
		imageload.Module,
		pagetemplate.Module,
		ratelimit.Module,
		submission.Module,
		wizard.Module,
		handlers.Module,
	}
}

func newExportCmd(static fs.FS) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every static page to a directory",
		Long: `Renders the home, about, projects and landing pages to <out>/<path>/index.html,
writes a sitemap and copies the static assets. The contact page needs the
server and is skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log := logger.NewLogger()
			reg, err := content.Load()
			if err != nil {
				return err
			}

			prober := imageload.NewProberFromConfig(static, cfg, log)
			composer := pagetemplate.NewFromConfig(reg, prober, cfg, log)
			res, err := export.New(composer, static, cfg.SiteBaseURL, log).Run(cmd.Context(), out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d pages and %d assets to %s\n", len(res.Pages), res.Assets, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the pages in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := content.Load()
			if err != nil {
				return err
			}
			return listPages(cmd.OutOrStdout(), reg)
		},
	}
}

// listPages prints the hand-built pages, then every registry record.
func listPages(w io.Writer, reg *content.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tPATH\tKIND\tTITLE")
	for _, link := range reg.NavLinks() {
		if _, err := reg.Page(link.Key); err == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", link.Key, link.Path, link.Category, link.Label)
	}
	for _, rec := range reg.Pages() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rec.Key, rec.Path, rec.Kind, rec.Title)
	}
	return tw.Flush()
}
