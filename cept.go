package esm

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// AlignmentPair links one source index to one target index.
type AlignmentPair struct {
	Source int
	Target int
}

// Alignment is an unordered many-to-many word alignment. Duplicate pairs
// are allowed and have no effect.
type Alignment []AlignmentPair

// Cept is one connected component of the alignment graph: the source and
// target indices that are linked to each other, each in ascending order.
//
// An unaligned source index forms a cept with an empty Target. An unaligned
// target index forms a cept with an empty Source.
type Cept struct {
	Source []int
	Target []int
}

// String formats c as "({0,1},{0})".
func (c Cept) String() string {
	return "(" + formatIndexSet(c.Source) + "," + formatIndexSet(c.Target) + ")"
}

func formatIndexSet(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// BuildCepts groups the alignment into cepts over a source of sourceLen
// tokens and a target of targetLen tokens.
//
// Every target index appears in exactly one cept. Every source index appears
// in exactly one cept; unaligned sources become singleton cepts with no
// targets.
//
// Cepts with targets are ordered by their target sets. Each unaligned
// source is placed right before the first cept whose lowest source index is
// larger than its own, or at the end when there is none. The order depends
// only on the components, not on the order of the alignment pairs.
func BuildCepts(alignment Alignment, sourceLen, targetLen int) ([]Cept, error) {
	if sourceLen < 0 || targetLen < 0 {
		return nil, fmt.Errorf("%w: source %d, target %d", ErrNegativeLength, sourceLen, targetLen)
	}

	g := &alignmentGraph{
		sourceAligned: make([][]int, sourceLen),
		targetAligned: make([][]int, targetLen),
		sourceSeen:    make([]bool, sourceLen),
		targetSeen:    make([]bool, targetLen),
	}
	for _, p := range alignment {
		if p.Source < 0 || p.Source >= sourceLen || p.Target < 0 || p.Target >= targetLen {
			return nil, fmt.Errorf("%w: pair %d-%d with source length %d, target length %d",
				ErrAlignmentOutOfRange, p.Source, p.Target, sourceLen, targetLen)
		}
		g.sourceAligned[p.Source] = append(g.sourceAligned[p.Source], p.Target)
		g.targetAligned[p.Target] = append(g.targetAligned[p.Target], p.Source)
	}

	linked := make([]Cept, 0, targetLen)
	for t := range targetLen {
		if g.targetSeen[t] {
			continue
		}
		linked = append(linked, g.component(t))
	}
	var unaligned []int
	for s := range sourceLen {
		if !g.sourceSeen[s] {
			unaligned = append(unaligned, s)
		}
	}

	slices.SortFunc(linked, func(a, b Cept) int {
		return slices.Compare(a.Target, b.Target)
	})
	return placeUnaligned(linked, unaligned), nil
}

// placeUnaligned merges singleton cepts for the ascending source indices
// in unaligned into linked. A singleton goes before the first cept of
// linked whose lowest source index is larger; cepts without sources do not
// take part in the comparison.
func placeUnaligned(linked []Cept, unaligned []int) []Cept {
	cepts := make([]Cept, 0, len(linked)+len(unaligned))
	k := 0
	for _, c := range linked {
		if len(c.Source) > 0 {
			for k < len(unaligned) && unaligned[k] < c.Source[0] {
				cepts = append(cepts, Cept{Source: []int{unaligned[k]}})
				k++
			}
		}
		cepts = append(cepts, c)
	}
	for _, s := range unaligned[k:] {
		cepts = append(cepts, Cept{Source: []int{s}})
	}
	return cepts
}

// alignmentGraph is the bipartite alignment graph as per-side adjacency
// lists plus visited flags.
type alignmentGraph struct {
	sourceAligned [][]int // source index -> aligned target indices
	targetAligned [][]int // target index -> aligned source indices
	sourceSeen    []bool
	targetSeen    []bool
}

// node is a vertex of the alignment graph.
type node struct {
	index  int
	target bool
}

// component collects the cept containing target index t with a
// breadth-first traversal that alternates sides.
//
// Time:   O(V + E) over the component.
// Memory: O(V) for the queue.
func (g *alignmentGraph) component(t int) Cept {
	var c Cept
	queue := []node{{index: t, target: true}}
	g.targetSeen[t] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u.target {
			c.Target = append(c.Target, u.index)
			for _, s := range g.targetAligned[u.index] {
				if !g.sourceSeen[s] {
					g.sourceSeen[s] = true
					queue = append(queue, node{index: s})
				}
			}
			continue
		}
		c.Source = append(c.Source, u.index)
		for _, tt := range g.sourceAligned[u.index] {
			if !g.targetSeen[tt] {
				g.targetSeen[tt] = true
				queue = append(queue, node{index: tt, target: true})
			}
		}
	}

	slices.Sort(c.Source)
	slices.Sort(c.Target)
	return c
}
