package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/masterclass/internal/content"
	"github.com/ziadkadry99/masterclass/internal/page"
	"github.com/ziadkadry99/masterclass/internal/progress"
	"github.com/ziadkadry99/masterclass/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the content document and render every page",
	Long: `Fetches and validates the content document, then renders the homepage and
every section and topic page. Fails on transport or malformed content errors
and on pages that render without their content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		a, err := buildApp(cfg, logger)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		doc, err := a.store.Document(ctx)
		if err != nil {
			return fmt.Errorf("loading content from %s: %w", cfg.Content.Source, err)
		}

		jobs := checkJobs(doc)
		reporter := progress.NewReporter(cmd.ErrOrStderr(), "Checking pages")
		reporter.Start(len(jobs))
		var failures []string
		for i, job := range jobs {
			if err := job.run(ctx, a.renderer, a.site); err != nil {
				failures = append(failures, fmt.Sprintf("%s: %v", job.name, err))
			}
			reporter.Update(i+1, job.name)
		}
		reporter.Finish()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Checked %d pages (%d sections, %d programs)\n", len(jobs), len(doc.Sections), len(a.catalog.All()))
		if len(failures) > 0 {
			for _, f := range failures {
				fmt.Fprintf(out, "  FAIL %s\n", f)
			}
			return fmt.Errorf("%d of %d pages failed", len(failures), len(jobs))
		}
		return nil
	},
}

// checkJob renders one page and checks that the slot it expects is filled.
type checkJob struct {
	name  string
	route page.Route
	query url.Values
	slot  page.Slot
	want  string
}

func checkJobs(doc *content.Document) []checkJob {
	jobs := []checkJob{{name: "home", route: page.RouteHome}}
	for _, sec := range doc.Sections {
		jobs = append(jobs, checkJob{
			name:  "section " + sec.ID,
			route: page.RouteSection,
			query: url.Values{"id": {sec.ID}},
			slot:  page.SlotSectionTitle,
			want:  sec.Title,
		})
		for _, t := range sec.Topics {
			jobs = append(jobs, checkJob{
				name:  "topic " + sec.ID + "/" + t.ID,
				route: page.RouteTopic,
				query: url.Values{"section": {sec.ID}, "topic": {t.ID}},
				slot:  page.SlotTopicTitle,
				want:  t.Title,
			})
		}
	}
	return jobs
}

func (j checkJob) run(ctx context.Context, r *page.Renderer, s *site.Site) error {
	p := page.New(j.route)
	r.Render(ctx, p, j.route, j.query)
	if j.slot != "" && p.Text(j.slot) != j.want {
		return fmt.Errorf("%s = %q, want %q", j.slot, p.Text(j.slot), j.want)
	}
	return s.WritePage(io.Discard, p)
}
