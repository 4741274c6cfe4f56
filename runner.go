package asciiwalk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/aretw0/asciiwalk/pkg/ports"
)

// Report pairs a walk result with the source it was read from.
type Report struct {
	Source string         `json:"source"`
	Result *domain.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Runner reads maps from readers and walks them with an engine.
// This allows for easy testing and integration with different frontends (CLI, HTTP, MCP).
type Runner struct {
	Engine ports.Walker
}

// NewRunner creates a Runner around engine.
func NewRunner(engine ports.Walker) *Runner {
	return &Runner{Engine: engine}
}

// Run reads the whole of r and walks it.
// A missing start marker is reported in the Report rather than returned,
// so one bad source does not stop a batch.
func (r *Runner) Run(ctx context.Context, source string, in io.Reader) (Report, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read %s: %w", source, err)
	}

	rep := Report{Source: source}
	res, err := r.Engine.Walk(ctx, string(data))
	switch {
	case err == nil:
		rep.Result = res
	case errors.Is(err, domain.ErrStartNotFound), errors.Is(err, domain.ErrStepLimitExceeded):
		rep.Result = res
		rep.Error = err.Error()
	default:
		return Report{}, fmt.Errorf("failed to walk %s: %w", source, err)
	}
	return rep, nil
}

// WriteText prints a report the way the classic driver does:
//
//	Letters: "ACB"
//	Path as characters: "@---A---+|C|+---+|+-B-x"
func WriteText(w io.Writer, rep Report) error {
	if rep.Result == nil {
		_, err := fmt.Fprintf(w, "%s: %s\n", rep.Source, rep.Error)
		return err
	}
	_, err := fmt.Fprintf(w, "Letters: %q\nPath as characters: %q\n", rep.Result.Letters, rep.Result.Characters)
	return err
}

// WriteJSON prints a report as a single JSON line.
func WriteJSON(w io.Writer, rep Report) error {
	return json.NewEncoder(w).Encode(rep)
}
