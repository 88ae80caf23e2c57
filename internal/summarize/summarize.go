// Package summarize aggregates project source files into one text blob.
//
// It drives the walker over a project root and runs every candidate through
// decode, normalize, and clean before appending a header-wrapped fragment to
// the output. A file that cannot be read is logged and skipped; only an
// invalid root aborts the run.
package summarize

import (
	"log/slog"
	"strings"

	"codesum/internal/cleanrule"
	"codesum/internal/logging"
	"codesum/internal/textdec"
	"codesum/internal/textnorm"
	"codesum/internal/walker"
)

// headerRule is the literal line opening every fragment.
const headerRule = "============="

// Options configures one aggregation run.
type Options struct {
	Root string
	// Extensions in caller order; the first match labels a file.
	Extensions []string
	Policy     textnorm.Policy
	// ExtraExcludeDirs are merged with the fixed exclusion defaults.
	ExtraExcludeDirs []string
	// Verbose logs the decoder tier used for every file.
	Verbose bool
}

// Result is the aggregate blob plus processing counters.
type Result struct {
	Aggregate string
	Processed int
	Skipped   int
}

// Run walks the root and builds the aggregate. The returned error is non-nil
// only for failures before any file is processed (walker.ErrInvalidRoot or a
// directory listing failure); per-file read errors are contained.
func Run(opts Options, logger *slog.Logger) (Result, error) {
	log := logging.NewComponentLogger(logger, "summarize")

	candidates, err := walker.Walk(opts.Root, opts.Extensions, walker.NewRules(opts.ExtraExcludeDirs), logger)
	if err != nil {
		return Result{}, err
	}

	var out strings.Builder
	res := Result{}
	for _, cand := range candidates {
		decoded, err := textdec.ReadFile(cand.Path)
		if err != nil {
			log.Error("skipping unreadable file",
				logging.Args(logging.String(logging.FieldPath, cand.RelPath), logging.Error(err))...)
			res.Skipped++
			continue
		}
		if opts.Verbose {
			log.Info("decoded file",
				logging.Args(
					logging.String(logging.FieldPath, cand.RelPath),
					logging.String(logging.FieldEncoding, decoded.Encoding))...)
		}

		body := textnorm.Apply(opts.Policy, decoded.Text)
		body = cleanrule.Clean(body, cand.Ext)

		out.WriteString(headerRule)
		out.WriteByte('\n')
		out.WriteString(cand.RelPath)
		out.WriteByte('\n')
		out.WriteString(body)
		out.WriteByte('\n')
		res.Processed++
	}

	res.Aggregate = out.String()
	if res.Processed == 0 {
		log.Info("no files processed; check the extensions or the directory content",
			logging.Args(logging.Int("skipped", res.Skipped))...)
	} else {
		log.Info("aggregation complete",
			logging.Args(logging.Int("processed", res.Processed), logging.Int("skipped", res.Skipped))...)
	}
	return res, nil
}
