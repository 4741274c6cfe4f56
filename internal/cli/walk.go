package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/asciiwalk"
	"github.com/aretw0/asciiwalk/internal/config"
	"github.com/aretw0/asciiwalk/internal/presentation/tui"
	"github.com/aretw0/asciiwalk/internal/walker"
	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
)

// StdinSource is the source name used when reading standard input.
const StdinSource = "-"

// WalkOptions configures RunWalk.
type WalkOptions struct {
	Sources []string
	Stdin   io.Reader
	Stdout  io.Writer
	Trace   bool
	Profile termenv.Profile
}

// SourceReport pairs a walk report with the map it was produced from.
type SourceReport struct {
	asciiwalk.Report
	Map string
}

// WalkSources walks every source concurrently and returns the reports in
// input order. An empty source list reads stdin.
func WalkSources(ctx context.Context, r *asciiwalk.Runner, sources []string, stdin io.Reader) ([]SourceReport, error) {
	if len(sources) == 0 {
		sources = []string{StdinSource}
	}

	// stdin can only be read once; repeated "-" sources share its text.
	readStdin := sync.OnceValues(func() (string, error) {
		return readAll(StdinSource, stdin)
	})

	reports := make([]SourceReport, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, src := range sources {
		g.Go(func() error {
			var raw string
			var err error
			if src == StdinSource {
				raw, err = readStdin()
			} else {
				raw, err = readAll(src, nil)
			}
			if err != nil {
				return err
			}

			rep, err := r.Run(ctx, src, strings.NewReader(raw))
			if err != nil {
				return err
			}
			reports[i] = SourceReport{Report: rep, Map: raw}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func readAll(src string, stdin io.Reader) (string, error) {
	if src == StdinSource {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", src, err)
	}
	return string(data), nil
}

// RunWalk walks the sources and prints the reports in the configured format.
func RunWalk(ctx context.Context, cfg config.Config, logger *slog.Logger, opts WalkOptions) error {
	engine, closeStore, err := NewEngine(ctx, cfg, logger, EngineOptions{Trace: opts.Trace})
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close result store", "err", err)
		}
	}()

	reports, err := WalkSources(ctx, asciiwalk.NewRunner(engine), opts.Sources, opts.Stdin)
	if err != nil {
		return err
	}

	for _, rep := range reports {
		if rep.Error != "" {
			logger.Warn("Walk incomplete", "source", rep.Source, "err", rep.Error)
		}
	}

	return writeReports(opts.Stdout, cfg.Format, reports, opts)
}

func writeReports(w io.Writer, format string, reports []SourceReport, opts WalkOptions) error {
	switch format {
	case config.FormatJSON:
		for _, rep := range reports {
			if err := asciiwalk.WriteJSON(w, rep.Report); err != nil {
				return err
			}
		}
		return nil
	case config.FormatMarkdown:
		render := tui.NewRendererWithStyle("notty")
		if opts.Profile != termenv.Ascii {
			render = tui.NewRenderer()
		}
		plain := make([]asciiwalk.Report, len(reports))
		for i, rep := range reports {
			plain[i] = rep.Report
		}
		out, err := render(tui.MarkdownReport(plain))
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		for _, rep := range reports {
			if opts.Trace && rep.Result != nil {
				overlay := tui.Overlay(domain.NewGrid(rep.Map), rep.Result.Trace, opts.Profile)
				if _, err := fmt.Fprintln(w, overlay); err != nil {
					return err
				}
			}
			if err := asciiwalk.WriteText(w, rep.Report); err != nil {
				return err
			}
		}
		return nil
	}
}

// RunPlay opens the interactive stepper on one source.
func RunPlay(src string, stdin io.Reader, logger *slog.Logger) error {
	raw, err := readAll(src, stdin)
	if err != nil {
		return err
	}
	return tui.Play(src, walker.New(raw, walker.WithLogger(logger)))
}
