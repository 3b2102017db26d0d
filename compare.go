package esm

// myersDiff runs the Myers engine over x and y and returns the tag sequence.
func myersDiff(x, y []string, o *options) []Tag {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}

	// Preprocessing: filter confusing tokens
	if o.preprocessing && !o.forceMinimal {
		if fx, fy, mapping := filterConfusingTokens(x, y); mapping != nil {
			return mapping.mapTags(myersTags(fx, fy, o))
		}
	}
	return myersTags(x, y, o)
}

// myersTags runs the Myers engine without preprocessing.
func myersTags(x, y []string, o *options) []Tag {
	ctx := newDiffContext(x, y, o)
	ctx.compareSeq(0, len(x), 0, len(y), o.forceMinimal)
	return ctx.buildTags()
}

// compareSeq is the divide-and-conquer core of the Myers diff algorithm.
// It compares xvec[xoff:xlim] with yvec[yoff:ylim] and marks changes
// in deleted and inserted.
//
// Parameters:
//   - xoff, xlim: bounds in xvec [xoff, xlim)
//   - yoff, ylim: bounds in yvec [yoff, ylim)
//   - findMinimal: if true, find the truly minimal edit script
func (ctx *diffContext) compareSeq(xoff, xlim, yoff, ylim int, findMinimal bool) {
	// Trim matching tokens from the start
	for xoff < xlim && yoff < ylim && ctx.equal(xoff, yoff) {
		xoff++
		yoff++
	}

	// Trim matching tokens from the end
	for xoff < xlim && yoff < ylim && ctx.equal(xlim-1, ylim-1) {
		xlim--
		ylim--
	}

	if xoff == xlim {
		ctx.insertTarget(yoff, ylim)
		return
	}
	if yoff == ylim {
		ctx.deleteSource(xoff, xlim)
		return
	}

	part := ctx.findMiddleSnake(xoff, xlim, yoff, ylim, findMinimal)

	ctx.compareSeq(xoff, part.xmid, yoff, part.ymid, part.loMinimal)
	ctx.compareSeq(part.xmid, xlim, part.ymid, ylim, part.hiMinimal)
}

// buildTags converts the change marks into one tag per alignment step.
// Within a change region deletions come before insertions.
func (ctx *diffContext) buildTags() []Tag {
	n := len(ctx.xvec)
	m := len(ctx.yvec)
	tags := make([]Tag, 0, max(n, m))
	i, j := 0, 0

	for i < n || j < m {
		switch {
		case i < n && j < m && !ctx.deleted[i] && !ctx.inserted[j]:
			tags = append(tags, Match)
			i++
			j++
		case i < n && (ctx.deleted[i] || j == m):
			tags = append(tags, Delete)
			i++
		default:
			tags = append(tags, Insert)
			j++
		}
	}

	return tags
}
