package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dacharyc/esm"
)

// parseAlignment parses whitespace-separated "i-j" pairs, where i is a
// source index and j a target index.
func parseAlignment(s string) (esm.Alignment, error) {
	fields := strings.Fields(s)
	alignment := make(esm.Alignment, 0, len(fields))
	for _, f := range fields {
		src, tgt, ok := strings.Cut(f, "-")
		if !ok {
			return nil, fmt.Errorf("alignment pair %q: missing '-'", f)
		}
		i, err := strconv.Atoi(src)
		if err != nil {
			return nil, fmt.Errorf("alignment pair %q: source index: %v", f, err)
		}
		j, err := strconv.Atoi(tgt)
		if err != nil {
			return nil, fmt.Errorf("alignment pair %q: target index: %v", f, err)
		}
		alignment = append(alignment, esm.AlignmentPair{Source: i, Target: j})
	}
	return alignment, nil
}
