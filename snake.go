package esm

import "math"

// The core Myers algorithm is from:
// - Myers 1986: "An O(ND) Difference Algorithm and Its Variations"
//   http://www.xmailserver.org/diff2.pdf
//
// Diagonals are addressed in absolute coordinates (k = x - y), the layout
// used by GNU diffutils' diffseq.h, so both searches can share the
// context's diagonal arrays across recursive calls without clearing them.

// findMiddleSnake implements bidirectional search from Myers paper Section 4b.
// It finds the "middle snake" - the optimal split point for divide-and-conquer.
//
// Parameters:
//   - xoff, xlim: bounds in xvec [xoff, xlim)
//   - yoff, ylim: bounds in yvec [yoff, ylim)
//   - findMinimal: if true, ignore the cost limit
//
// Returns a partition with the midpoint coordinates and whether each half
// needs minimal search.
func (ctx *diffContext) findMiddleSnake(xoff, xlim, yoff, ylim int, findMinimal bool) partition {
	// Special case: one side is empty
	if xoff == xlim {
		return partition{xmid: xoff, ymid: ylim, loMinimal: true, hiMinimal: true}
	}
	if yoff == ylim {
		return partition{xmid: xlim, ymid: yoff, loMinimal: true, hiMinimal: true}
	}

	fd, bd := ctx.fdiag, ctx.bdiag
	off := ctx.diagOffset()

	dmin := xoff - ylim // lowest reachable diagonal
	dmax := xlim - yoff // highest reachable diagonal
	fmid := xoff - yoff // forward search starts here
	bmid := xlim - ylim // backward search starts here
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// When delta is odd the paths can only meet on a forward step.
	odd := (fmid-bmid)&1 != 0

	fd[off+fmid] = xoff
	bd[off+bmid] = xlim

	for cost := 1; ; cost++ {
		// Forward search: widen the band, seeding new edges with sentinels.
		if fmin > dmin {
			fmin--
			fd[off+fmin-1] = -1
		} else {
			fmin++
		}
		if fmax < dmax {
			fmax++
			fd[off+fmax+1] = -1
		} else {
			fmax--
		}

		for d := fmax; d >= fmin; d -= 2 {
			tlo, thi := fd[off+d-1], fd[off+d+1]
			x := tlo + 1 // from d-1, moving right (deletion)
			if tlo < thi {
				x = thi // from d+1, moving down (insertion)
			}
			y := x - d

			// Follow diagonal (matching tokens)
			for x < xlim && y < ylim && ctx.equal(x, y) {
				x++
				y++
			}
			fd[off+d] = x

			if odd && bmin <= d && d <= bmax && bd[off+d] <= x {
				return partition{xmid: x, ymid: y, loMinimal: true, hiMinimal: true}
			}
		}

		// Backward search
		if bmin > dmin {
			bmin--
			bd[off+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < dmax {
			bmax++
			bd[off+bmax+1] = math.MaxInt
		} else {
			bmax--
		}

		for d := bmax; d >= bmin; d -= 2 {
			tlo, thi := bd[off+d-1], bd[off+d+1]
			x := thi - 1
			if tlo < thi {
				x = tlo
			}
			y := x - d

			// Follow diagonal backward
			for xoff < x && yoff < y && ctx.equal(x-1, y-1) {
				x--
				y--
			}
			bd[off+d] = x

			if !odd && fmin <= d && d <= fmax && x <= fd[off+d] {
				return partition{xmid: x, ymid: y, loMinimal: true, hiMinimal: true}
			}
		}

		if !findMinimal && ctx.costLimit > 0 && cost >= ctx.costLimit {
			return ctx.settle(xoff, xlim, yoff, ylim, fmin, fmax, bmin, bmax)
		}
	}
}

// settle gives up on the minimal path once the cost limit is hit and splits
// at whichever frontier point (forward or backward) has made the most
// progress. The half beyond that point loses its minimality guarantee.
func (ctx *diffContext) settle(xoff, xlim, yoff, ylim, fmin, fmax, bmin, bmax int) partition {
	off := ctx.diagOffset()

	fxybest, fxbest := -1, 0
	for d := fmax; d >= fmin; d -= 2 {
		x := min(ctx.fdiag[off+d], xlim)
		y := x - d
		if ylim < y {
			x = ylim + d
			y = ylim
		}
		if fxybest < x+y {
			fxybest = x + y
			fxbest = x
		}
	}

	bxybest, bxbest := math.MaxInt, 0
	for d := bmax; d >= bmin; d -= 2 {
		x := max(xoff, ctx.bdiag[off+d])
		y := x - d
		if y < yoff {
			x = yoff + d
			y = yoff
		}
		if x+y < bxybest {
			bxybest = x + y
			bxbest = x
		}
	}

	if (xlim+ylim)-bxybest < fxybest-(xoff+yoff) {
		return partition{
			xmid:      fxbest,
			ymid:      fxybest - fxbest,
			loMinimal: true,
			hiMinimal: false, // Upper half may not be minimal
		}
	}
	return partition{
		xmid:      bxbest,
		ymid:      bxybest - bxbest,
		loMinimal: false, // Lower half may not be minimal
		hiMinimal: true,
	}
}
