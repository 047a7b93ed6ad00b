package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jacksonlee411/Leadership-Explorer/internal/explorerclient"
	"github.com/jacksonlee411/Leadership-Explorer/internal/textview"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const msgLoadFailed = "Failed to load data. Please try again later."

// errLoadFailed is what users see for any fetch failure; the cause goes to the verbose log.
var errLoadFailed = errors.New(msgLoadFailed)

type globalOptions struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

type hierarchyOptions struct {
	search      string
	filters     services.Filters
	tab         int64
	printFacets bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	var g globalOptions
	var opts hierarchyOptions

	cmd := &cobra.Command{
		Use:           "explorer",
		Short:         "Browse the leadership hierarchy served by the leadership explorer API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHierarchy(cmd.Context(), out, g, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.baseURL, "base-url", envDefault("EXPLORER_BASE_URL", "http://localhost:8080"), "API base URL (default $EXPLORER_BASE_URL)")
	pf.DurationVar(&g.timeout, "timeout", 10*time.Second, "Request timeout")
	pf.BoolVar(&g.verbose, "verbose", false, "Log request details to stderr")

	f := cmd.Flags()
	f.StringVar(&opts.search, "search", "", "Search officials by English or Chinese name")
	f.StringVar(&opts.filters.Hometown, "hometown", "", "Filter by hometown (\"all\" clears)")
	f.StringVar(&opts.filters.EducationLevel, "education-level", "", "Filter by education level (\"all\" clears)")
	f.StringVar(&opts.filters.EducationType, "education-type", "", "Filter by education type (\"all\" clears)")
	f.StringVar(&opts.filters.Generation, "generation", "", "Filter by generation (\"all\" clears)")
	f.Int64Var(&opts.tab, "tab", 0, "Show only the tab with this root body id (default: all tabs)")
	f.BoolVar(&opts.printFacets, "facets", false, "Print facet options before the hierarchy")

	cmd.AddCommand(newFacetsCmd(out, &g), newLeadersCmd(out, &g))
	return cmd
}

func newFacetsCmd(out io.Writer, g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "Print facet options with counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, logger, cancel := g.client()
			defer cancel()

			dir, err := client.FetchDirectory(cmd.Context())
			if err != nil {
				logger.Error("fetch directory", zap.Error(err))
				return errLoadFailed
			}
			textview.New(out).Facets(services.ComputeFacets(dir.Officials))
			return nil
		},
	}
}

func newLeadersCmd(out io.Writer, g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leaders",
		Short: "Print leaders grouped by branch, body and group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, logger, cancel := g.client()
			defer cancel()

			branches, err := client.FetchLeaders(cmd.Context())
			if err != nil {
				logger.Error("fetch leaders", zap.Error(err))
				return errLoadFailed
			}
			textview.New(out).Leaders(branches)
			return nil
		},
	}
}

func runHierarchy(ctx context.Context, out io.Writer, g globalOptions, opts hierarchyOptions) error {
	client, logger, cancel := g.client()
	defer cancel()

	start := time.Now()
	dir, err := client.FetchDirectory(ctx)
	if err != nil {
		logger.Error("fetch directory", zap.Error(err))
		return errLoadFailed
	}
	logger.Debug("fetched directory",
		zap.Int("bodies", len(dir.Bodies)),
		zap.Int("officials", len(dir.Officials)),
		zap.Duration("duration", time.Since(start)),
	)

	view := textview.New(out)
	if opts.printFacets {
		view.Facets(services.ComputeFacets(dir.Officials))
		_, _ = io.WriteString(out, "\n")
	}

	h := services.RenderHierarchy(dir.Bodies, dir.Officials, opts.search, normalizeFilters(opts.filters))
	if !view.Hierarchy(h, opts.tab) {
		return errors.New("unknown tab")
	}
	return nil
}

// client builds the API client. The returned cancel flushes the logger.
func (g *globalOptions) client() (*explorerclient.Client, *zap.Logger, func()) {
	logger := zap.NewNop()
	if g.verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
	httpClient := &http.Client{Timeout: g.timeout}
	logger.Debug("api client", zap.String("base_url", g.baseURL), zap.Duration("timeout", g.timeout))
	return explorerclient.New(g.baseURL, httpClient), logger, func() { _ = logger.Sync() }
}

func normalizeFilters(f services.Filters) services.Filters {
	unset := func(v string) string {
		if v == "all" {
			return ""
		}
		return v
	}
	return services.Filters{
		Hometown:       unset(f.Hometown),
		EducationLevel: unset(f.EducationLevel),
		EducationType:  unset(f.EducationType),
		Generation:     unset(f.Generation),
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
