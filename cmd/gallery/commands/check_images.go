package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/handiism/artist-gallery/internal/app"
	"github.com/handiism/artist-gallery/internal/gallery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newCheckImagesCommand(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check-images",
		Short: "Fetch every portrait and report broken links",
		Long: `Check-images loads every portrait through the same cache, rate limiter
and circuit breaker the browser uses, then prints a summary and the cache
metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			a, err := app.New(opts.settings, reg)
			if err != nil {
				return opts.printer.Error("Cannot open catalog", err.Error(), nil)
			}

			p := opts.printer
			var mu sync.Mutex
			var broken, missing int
			onProgress := func(e gallery.ProgressEvent) {
				mu.Lock()
				defer mu.Unlock()
				switch {
				case e.Loaded:
					p.Success("[%d/%d] %s\n", e.Done, e.Total, e.Artist.Name)
				case !e.Artist.HasImage():
					missing++
					p.Faint("- [%d/%d] %s: no image\n", e.Done, e.Total, e.Artist.Name)
				default:
					broken++
					p.Failure("[%d/%d] %s: %s\n", e.Done, e.Total, e.Artist.Name, e.Artist.ImageURL)
				}
			}

			ctrl := gallery.New(a.Store, a.Cache, append(a.ControllerOptions(), gallery.WithOnProgress(onProgress))...)
			p.Step("checking %d portraits\n", a.Store.Count())
			report := ctrl.PrefetchRecords(cmd.Context(), a.Store.All())

			p.Info("\n")
			p.Heading("%d loaded, %d broken, %d without image", report.Loaded, broken, missing)
			if err := printMetrics(opts, reg); err != nil {
				return err
			}

			if strict && broken > 0 {
				return fmt.Errorf("%d portraits unavailable", broken)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any portrait link is broken")
	return cmd
}

func printMetrics(opts *options, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			value := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("  %-55s %g", name, value))
		}
	}
	sort.Strings(lines)

	for _, l := range lines {
		opts.printer.Faint("%s\n", l)
	}
	return nil
}
