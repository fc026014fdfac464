package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/komik-api/internal/core"
	"github.com/vrsandeep/komik-api/internal/filters"
	"github.com/vrsandeep/komik-api/internal/models"
)

type appFactory func() (*core.App, error)

// cli carries what every subcommand needs.
type cli struct {
	out     io.Writer
	newApp  appFactory
	baseURL string
	compact bool
}

func newRootCmd(out io.Writer, newApp appFactory) *cobra.Command {
	c := &cli{out: out, newApp: newApp}

	rootCmd := &cobra.Command{
		Use:           "komik-cli",
		Short:         "Query the KomikCast catalog and print normalized JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&c.baseURL, "base-url", "", "override the upstream site root")
	rootCmd.PersistentFlags().BoolVar(&c.compact, "compact", false, "print JSON on a single line")

	var page int
	addPage := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&page, "page", 1, "listing page")
	}

	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "List the most popular titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			list, err := app.Source.Popular(cmd.Context(), page)
			if err != nil {
				return fmt.Errorf("failed to fetch popular manga: %w", err)
			}
			return c.print(list)
		},
	}
	addPage(popularCmd)

	latestCmd := &cobra.Command{
		Use:   "latest",
		Short: "List recently updated titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			list, err := app.Source.Latest(cmd.Context(), page)
			if err != nil {
				return fmt.Errorf("failed to fetch latest updates: %w", err)
			}
			return c.print(list)
		},
	}
	addPage(latestCmd)

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return fmt.Errorf("a search query is required")
			}
			app, err := c.app()
			if err != nil {
				return err
			}
			list, err := app.Source.Search(cmd.Context(), query, page)
			if err != nil {
				return fmt.Errorf("failed to perform search: %w", err)
			}
			return c.print(list)
		},
	}
	addPage(searchCmd)

	var req models.FilterRequest
	var genres string
	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "List titles matching status, type, order and genre filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			req.Page = page
			req.Genres = filters.ParseGenres(genres)
			list, err := app.Source.Filter(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to fetch filtered manga: %w", err)
			}
			return c.print(list)
		},
	}
	addPage(filterCmd)
	filterCmd.Flags().StringVar(&req.Status, "status", "", "ongoing or completed")
	filterCmd.Flags().StringVar(&req.Type, "type", "", "manga, manhwa or manhua")
	filterCmd.Flags().StringVar(&req.OrderBy, "orderby", "", "sort order, e.g. popular or update")
	filterCmd.Flags().StringVar(&genres, "genres", "", `comma-separated genres, "-" prefix excludes (e.g. "action,-comedy")`)
	filterCmd.Flags().BoolVar(&req.Project, "project", false, "only list the site's own projects")

	mangaCmd := &cobra.Command{
		Use:   "manga <slug>",
		Short: "Show a title with its chapter list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			detail, err := app.Source.Detail(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch manga details: %w", err)
			}
			return c.print(detail)
		},
	}

	chapterCmd := &cobra.Command{
		Use:   "chapter <slug> <number>",
		Short: "List the page images of a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			images, err := app.Source.Chapter(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to fetch chapter images: %w", err)
			}
			return c.print(images)
		},
	}

	recommendationCmd := &cobra.Command{
		Use:   "recommendation",
		Short: "Show the home page carousel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			cards, err := app.Source.Recommendations(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch recommendations: %w", err)
			}
			return c.print(cards)
		},
	}

	filtersCmd := &cobra.Command{
		Use:   "filters",
		Short: "Print the available filter values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, err := filters.Default()
			if err != nil {
				return err
			}
			return c.print(taxonomy)
		},
	}

	rootCmd.AddCommand(popularCmd, latestCmd, searchCmd, filterCmd, mangaCmd, chapterCmd, recommendationCmd, filtersCmd)
	return rootCmd
}

// app builds the application, applying the --base-url override.
func (c *cli) app() (*core.App, error) {
	app, err := c.newApp()
	if err != nil {
		return nil, err
	}
	if c.baseURL != "" {
		app.Config.Upstream.BaseURL = strings.TrimRight(c.baseURL, "/")
		app = core.NewWithConfig(app.Config)
	}
	return app, nil
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	if !c.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
