package esm

import "math"

// minAutoCostLimit is the floor of the size-derived cost limit.
const minAutoCostLimit = 256

// partition is a split point of the edit graph chosen by findMiddleSnake.
// Source tokens before xmid are aligned with target tokens before ymid.
type partition struct {
	xmid, ymid int
	loMinimal  bool // the search before the split must stay minimal
	hiMinimal  bool // the search after the split must stay minimal
}

// diffContext is the state of one Myers run over a source (x) and target
// (y) token sequence.
type diffContext struct {
	xvec, yvec   []string
	fdiag, bdiag []int  // furthest x reached per diagonal, forward and backward
	deleted      []bool // source tokens without a partner in the target
	inserted     []bool // target tokens without a partner in the source
	costLimit    int    // 0 disables the settle heuristic
}

func newDiffContext(x, y []string, o *options) *diffContext {
	// Diagonals k = x - y span [-(m+1), n+1] once sentinels are included.
	diagSize := len(x) + len(y) + 3

	return &diffContext{
		xvec:      x,
		yvec:      y,
		fdiag:     make([]int, diagSize),
		bdiag:     make([]int, diagSize),
		deleted:   make([]bool, len(x)),
		inserted:  make([]bool, len(y)),
		costLimit: costLimitFor(len(x), len(y), o),
	}
}

// costLimitFor returns the edit cost after which a middle-snake search
// settles for a non-minimal split. An explicit WithCostLimit wins unless a
// minimal diff was requested; with heuristics on, the limit grows with
// sqrt(n*m).
func costLimitFor(n, m int, o *options) int {
	switch {
	case o.forceMinimal:
		return 0
	case o.costLimit > 0:
		return o.costLimit
	case o.useHeuristic:
		return max(minAutoCostLimit, int(math.Sqrt(float64(n))*math.Sqrt(float64(m))/4))
	default:
		return 0
	}
}

// diagOffset maps diagonal k to index k + diagOffset in fdiag and bdiag.
func (ctx *diffContext) diagOffset() int {
	return len(ctx.yvec) + 1
}

// deleteSource marks source tokens [lo, hi) as deleted.
func (ctx *diffContext) deleteSource(lo, hi int) {
	for i := lo; i < hi; i++ {
		ctx.deleted[i] = true
	}
}

// insertTarget marks target tokens [lo, hi) as inserted.
func (ctx *diffContext) insertTarget(lo, hi int) {
	for j := lo; j < hi; j++ {
		ctx.inserted[j] = true
	}
}

// equal reports whether source token i equals target token j.
func (ctx *diffContext) equal(i, j int) bool {
	return ctx.xvec[i] == ctx.yvec[j]
}
