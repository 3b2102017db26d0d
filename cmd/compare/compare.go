package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dacharyc/esm"
	"github.com/spf13/cobra"
)

// backend is a named diff configuration.
type backend struct {
	name string
	opts []esm.Option
}

// backends lists every backend in the order "all" runs them.
func backends() []backend {
	return []backend{
		{name: "myers"},
		{name: "histogram", opts: []esm.Option{esm.WithAlgorithm(esm.Histogram)}},
		{name: "dmp", opts: []esm.Option{esm.WithDiffer(esm.DiffMatchPatch())}},
		{name: "znkr", opts: []esm.Option{esm.WithDiffer(esm.Znkr())}},
		{name: "difflib", opts: []esm.Option{esm.WithDiffer(esm.Difflib())}},
	}
}

// selectBackends resolves the --backend flag.
func selectBackends(name string) ([]backend, error) {
	all := backends()
	if name == "all" {
		return all, nil
	}
	names := make([]string, 0, len(all))
	for _, b := range all {
		if b.name == name {
			return []backend{b}, nil
		}
		names = append(names, b.name)
	}
	return nil, fmt.Errorf("unknown backend %q (want one of %s, all)", name, strings.Join(names, ", "))
}

type config struct {
	backend         string
	alignment       string
	legacyDeletions bool
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:          "compare [flags] SOURCE TARGET",
		Short:        "Prints edit patterns between two whitespace-tokenized sentences",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), strings.Fields(args[0]), strings.Fields(args[1]), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.backend, "backend", "all", "diff backend: myers, histogram, dmp, znkr, difflib or all")
	cmd.Flags().StringVar(&cfg.alignment, "align", "", `word alignment as "i-j" pairs, e.g. "0-0 1-1"`)
	cmd.Flags().BoolVar(&cfg.legacyDeletions, "legacy-deletions", false, "drop deletion-only runs from diff-based edits")
	return cmd
}

func run(w io.Writer, source, target []string, cfg config) error {
	selected, err := selectBackends(cfg.backend)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "source: %d tokens, target: %d tokens\n", len(source), len(target))

	for _, b := range selected {
		opts := b.opts
		if cfg.legacyDeletions {
			opts = append(opts, esm.WithDeletionPatterns(false))
		}

		start := time.Now()
		edits, err := esm.DiffEdits(source, target, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "\n=== %s (%v) ===\n", b.name, elapsed)
		printEdits(w, edits)
	}

	if cfg.alignment == "" {
		return nil
	}
	alignment, err := parseAlignment(cfg.alignment)
	if err != nil {
		return err
	}
	edits, err := esm.AlignmentEdits(source, target, alignment)
	if err != nil {
		return fmt.Errorf("alignment: %w", err)
	}
	fmt.Fprintf(w, "\n=== alignment ===\n")
	printEdits(w, edits)
	return nil
}

func printEdits(w io.Writer, edits []string) {
	for _, e := range edits {
		fmt.Fprintf(w, "  %s\n", e)
	}
	s := analyze(edits)
	fmt.Fprintf(w, "  Patterns: %d (Equal: %d, Substitution: %d, Deletion: %d, Insertion: %d)\n",
		s.total, s.equal, s.substitution, s.deletion, s.insertion)
	fmt.Fprintf(w, "  Change regions: %d\n", s.changeRegions)
}

type editStats struct {
	total, equal, substitution, deletion, insertion int
	changeRegions                                   int
}

// analyze counts patterns by kind. A change region is a maximal run of
// non-equal patterns.
func analyze(edits []string) editStats {
	var s editStats
	s.total = len(edits)
	inChange := false
	for _, e := range edits {
		kind := esm.KindOf(e)
		switch kind {
		case esm.Equal:
			s.equal++
		case esm.Substitution:
			s.substitution++
		case esm.Deletion:
			s.deletion++
		case esm.Insertion:
			s.insertion++
		}
		if kind == esm.Equal {
			inChange = false
			continue
		}
		if !inChange {
			s.changeRegions++
			inChange = true
		}
	}
	return s
}
