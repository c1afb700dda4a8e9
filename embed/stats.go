package embed

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/latspace/latspace/smc"
)

// statsHeader is written once before the first record.
var statsHeader = []string{
	"run", "subject", "task", "model",
	"particles", "mcmc_steps", "iterations", "converged",
	"lambda", "log_marginal", "elapsed_s",
}

// StatsWriter appends one CSV summary row per finished run, for
// downstream model comparison. Not safe for concurrent use; write from
// a single goroutine after EmbedAll returns.
type StatsWriter struct {
	cw     *csv.Writer
	opts   smc.Options
	header bool
}

// NewStatsWriter wraps w with the sampler settings the rows describe.
// comma selects the field delimiter; pass ',' for plain CSV.
func NewStatsWriter(w io.Writer, opts smc.Options, comma rune) *StatsWriter {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	return &StatsWriter{cw: cw, opts: opts}
}

// Write appends the summary row of one result, emitting the header first
// when needed.
func (sw *StatsWriter) Write(res *Result) error {
	if !sw.header {
		if err := sw.cw.Write(statsHeader); err != nil {
			return err
		}
		sw.header = true
	}
	return sw.cw.Write([]string{
		res.ID.String(),
		strconv.Itoa(res.Subject),
		strconv.Itoa(res.Task),
		res.Kind.String(),
		strconv.Itoa(sw.opts.NParticles),
		strconv.Itoa(sw.opts.MCMCSteps),
		strconv.Itoa(res.Iterations),
		strconv.FormatBool(res.Converged),
		strconv.FormatFloat(res.Lambda, 'g', -1, 64),
		strconv.FormatFloat(res.LogMarginal, 'g', -1, 64),
		strconv.FormatFloat(res.Elapsed.Seconds(), 'g', -1, 64),
	})
}

// Flush writes buffered rows through to the underlying writer.
func (sw *StatsWriter) Flush() error {
	sw.cw.Flush()
	return sw.cw.Error()
}
