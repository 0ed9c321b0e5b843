package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_fuzzy_compare/pkg/fuzzy"
	"github.com/spf13/cobra"
)

// report is the printed outcome of a comparison.
type report struct {
	Similar       bool     `json:"similar"`
	Threshold     float64  `json:"threshold"`
	Path          string   `json:"path"`
	MetricSkipped bool     `json:"metric_skipped"`
	Score         *float64 `json:"score,omitempty"`
	UpperBound    float64  `json:"upper_bound"`
	ShortLength   int      `json:"short_length"`
	LongLength    int      `json:"long_length"`
	SizeRatio     float64  `json:"size_ratio"`
	StatusA       int      `json:"status_a,omitempty"`
	StatusB       int      `json:"status_b,omitempty"`
}

func newReport(r fuzzy.Result) report {
	rep := report{
		Similar:       r.Passed,
		Threshold:     r.Threshold,
		Path:          string(r.Path),
		MetricSkipped: r.Path.MetricSkipped(),
		UpperBound:    r.UpperBound,
		ShortLength:   r.ShortLength,
		LongLength:    r.LongLength,
		SizeRatio:     r.SizeRatio,
	}
	if r.ScoreComputed {
		score := r.Score
		rep.Score = &score
	}
	return rep
}

func (o *options) print(w io.Writer, rep report) error {
	if o.jsonOut {
		return writeJSON(w, rep)
	}
	fmt.Fprintf(w, "similar:     %t\n", rep.Similar)
	fmt.Fprintf(w, "threshold:   %g\n", rep.Threshold)
	fmt.Fprintf(w, "path:        %s\n", rep.Path)
	if rep.Score != nil {
		fmt.Fprintf(w, "score:       %.4f\n", *rep.Score)
	}
	fmt.Fprintf(w, "upper bound: %.4f\n", rep.UpperBound)
	fmt.Fprintf(w, "lengths:     %d / %d (ratio %.4f)\n", rep.ShortLength, rep.LongLength, rep.SizeRatio)
	if rep.StatusA != 0 || rep.StatusB != 0 {
		fmt.Fprintf(w, "status:      %d / %d\n", rep.StatusA, rep.StatusB)
	}
	return nil
}

// compare decides a and b with the flag configuration and prints the report.
func (o *options) compare(cmd *cobra.Command, a, b string) error {
	c, err := o.comparator()
	if err != nil {
		return err
	}
	defer c.Close()

	return o.print(cmd.OutOrStdout(), newReport(c.Compute(commandContext(cmd), a, b)))
}

// compareReaders is compare for bodies read under the --max-size limit.
func (o *options) compareReaders(cmd *cobra.Command, a, b io.Reader, decorate func(*report)) error {
	c, err := o.comparator()
	if err != nil {
		return err
	}
	defer c.Close()

	r, err := c.ComputeReaders(commandContext(cmd), a, b)
	if err != nil {
		return err
	}
	rep := newReport(r)
	if decorate != nil {
		decorate(&rep)
	}
	return o.print(cmd.OutOrStdout(), rep)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newScoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score <a> <b>",
		Short: "Print the similarity of two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.comparator()
			if err != nil {
				return err
			}
			defer c.Close()

			score := c.Similarity(args[0], args[1])
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]float64{"score": score})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", score)
			return nil
		},
	}
}

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Decide whether two strings are similar enough",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.compare(cmd, args[0], args[1])
		},
	}
}

func newFilesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "files <pathA> <pathB>",
		Short: "Decide whether two files are similar enough (- reads stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" && args[1] == "-" {
				return fmt.Errorf("only one file may be read from stdin")
			}
			a, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer a.Close()
			b, err := openInput(cmd, args[1])
			if err != nil {
				return err
			}
			defer b.Close()

			return opts.compareReaders(cmd, a, b, nil)
		},
	}
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

func newURLsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "urls <urlA> <urlB>",
		Short: "Fetch two URLs and decide whether their bodies are similar enough",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := fetchPair(commandContext(cmd), newFetcher(opts.timeout), args[0], args[1])
			if err != nil {
				return err
			}
			defer closePages(pages)

			return opts.compareReaders(cmd, pages[0].Body, pages[1].Body, func(r *report) {
				r.StatusA = pages[0].Status
				r.StatusB = pages[1].Status
			})
		},
	}
}

func newBoundsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the upper bound table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.comparator()
			if err != nil {
				return err
			}
			defer c.Close()

			entries := c.Table().Entries()
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			for _, b := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20v %v\n", b.SizeRatio, b.MaxSimilarity)
			}
			return nil
		},
	}
}
