package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	adapterlogger "github.com/baditaflorin/go_fuzzy_compare/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_compare/pkg/fuzzy"
	"github.com/spf13/cobra"
)

type options struct {
	threshold float64
	jsonOut   bool
	verbose   bool
	markup    bool
	mode      string
	timeout   time.Duration
	maxSize   int64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "fuzzycmp",
		Short: "Compare texts, files or HTTP responses for near duplicates",
		Long: `fuzzycmp scores how alike two texts are and decides whether they are
similar enough, skipping the scoring when their lengths already settle it.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&opts.threshold, "threshold", "t", fuzzy.DefaultThreshold, "similarity threshold in [0, 1]")
	pf.BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log decision details to stderr")
	pf.BoolVar(&opts.markup, "markup", false, "split markup and punctuation into words before comparing")
	pf.StringVar(&opts.mode, "mode", "quick", "character fallback: quick or blocks")
	pf.Int64Var(&opts.maxSize, "max-size", 10*1024*1024, "maximum body size in bytes for files and urls")
	pf.DurationVar(&opts.timeout, "timeout", 30*time.Second, "HTTP timeout for the urls command")

	rootCmd.AddCommand(
		newScoreCmd(opts),
		newCompareCmd(opts),
		newFilesCmd(opts),
		newURLsCmd(opts),
		newBoundsCmd(opts),
	)
	return rootCmd
}

// comparator builds a Comparator from the flags. The caller closes it.
func (o *options) comparator() (*fuzzy.Comparator, error) {
	mode, err := fuzzy.ParseCharacterMode(o.mode)
	if err != nil {
		return nil, err
	}

	var output io.Writer = io.Discard
	if o.verbose {
		output = os.Stderr
	}
	lc := adapterlogger.DefaultConfig(output)
	lc.AsyncWrite = false
	lc.Metrics = false

	fopts := []fuzzy.Option{
		fuzzy.WithLogConfig(lc),
		fuzzy.WithThreshold(o.threshold),
		fuzzy.WithCharacterMode(mode),
		fuzzy.WithMaxBodySize(o.maxSize),
	}
	if o.markup {
		fopts = append(fopts, fuzzy.WithMarkupNormalizer())
	}
	return fuzzy.New(fopts...)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
