package editdist

// Distance — generalized weighted edit distance
//
// Description:
//
//	Distance computes the minimum total cost of rune insertions,
//	deletions, substitutions and (optionally) adjacent transpositions
//	turning source into target, under the supplied cost model.
//
// Algorithm Outline (Full-Matrix DP):
//  1. Let m = len(source), n = len(target) in runes. Allocate the
//     (m+1)×(n+1) grid D, row-major in one flat slice.
//  2. Initialize: D[i][0] = i·delete, D[0][j] = j·insert.
//  3. For each cell (i, j) with i, j ≥ 1, with a = source[i-1] and
//     b = target[j-1], take the minimum of:
//     del    = D[i-1][j]   + deleteCost
//     ins    = D[i][j-1]   + insertCost
//     sub    = D[i-1][j-1] + (0 if a == b; table cost on a table hit;
//     else substituteCost)
//     sealed = D[i-2][j-2] + finalTransposeCost, when the final
//     channel is enabled and the trailing pairs are swapped
//     (source[i-2] == b and a == target[j-2]); referencing
//     D[i-2][j-2] directly is what seals the pair — no later
//     operation can touch either rune again.
//     swap   = D[i'-1][j'-1] + (i-i'-1)·deleteCost
//     + (j-j'-1)·insertCost + transposeCost, when the
//     reusable channel is enabled and (i', j') are the
//     last-seen positions forming a matching swapped pair
//     (Lowrance–Wagner); the swapped runes stay editable.
//  4. Result: D[m][n].
//
// The last-seen bookkeeping is one map (rune → most recent row whose
// source rune equals it, updated once per outer step) plus one scalar
// (most recent column of this row whose target rune equals the current
// source rune, updated once per inner step).
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n), one grid per call, discarded on return
//
// Errors:
//   - ErrInvalidCostModel — Distance only, before any DP work.

// Distance validates model and computes the weighted edit distance
// between source and target. Strings are compared rune-wise
// (code points), so multi-byte UTF-8 input is handled correctly.
//
// Fails fast with ErrInvalidCostModel when the model violates the
// invariants documented on CostModel.Validate; no partial computation
// is ever discarded.
func Distance(source, target string, model CostModel) (int, error) {
	if err := model.Validate(); err != nil {
		return 0, err
	}

	return distance([]rune(source), []rune(target), model), nil
}

// DistanceUnsafe computes the weighted edit distance without
// validating model. The caller is responsible for keeping the model
// consistent (see CostModel.Validate); with an inconsistent model the
// result is still a deterministic non-negative integer produced by the
// same recurrence — never a crash — but it is not guaranteed to be the
// true minimum cost.
func DistanceUnsafe(source, target string, model CostModel) int {
	return distance([]rune(source), []rune(target), model)
}

// distance is the DP core shared by both entry points. Pure: it reads
// a, b and m, allocates its own grid and bookkeeping, and returns
// D[len(a)][len(b)].
func distance(a, b []rune, m CostModel) int {
	srcLen, tgtLen := len(a), len(b)

	// Degenerate shapes: the distance to or from the empty string is
	// the total insertion/deletion cost of the non-empty one.
	if srcLen == 0 {
		return tgtLen * m.insertCost
	}
	if tgtLen == 0 {
		return srcLen * m.deleteCost
	}

	// One flat row-major grid; cell (i, j) lives at i*cols + j.
	cols := tgtLen + 1
	d := make([]int, (srcLen+1)*cols)
	for i := 1; i <= srcLen; i++ {
		d[i*cols] = i * m.deleteCost
	}
	for j := 1; j <= tgtLen; j++ {
		d[j] = j * m.insertCost
	}

	// lastRow[r] is the most recent row i whose source rune equals r,
	// considering only rows already finalized (< current i).
	var lastRow map[rune]int
	if m.transposeEnabled {
		lastRow = make(map[rune]int, srcLen)
	}

	var (
		i, j             int  // grid coordinates
		ai, bj           rune // runes under comparison
		subCost          int  // resolved substitution cost for (ai, bj)
		best             int  // running minimum for the current cell
		cand             int  // candidate under consideration
		swapRow, swapCol int  // Lowrance–Wagner last-seen pair (i', j')
		lastMatchCol     int  // most recent j with b[j-1] == ai, within this row
	)
	for i = 1; i <= srcLen; i++ {
		ai = a[i-1]
		lastMatchCol = 0
		for j = 1; j <= tgtLen; j++ {
			bj = b[j-1]

			// Read the last-seen pair before this cell updates it.
			if m.transposeEnabled {
				swapRow = lastRow[bj]
				swapCol = lastMatchCol
			}

			// Resolve the substitution cost: equality is free, a
			// table hit costs the special rate, anything else the
			// generic rate.
			if ai == bj {
				subCost = 0
				lastMatchCol = j
			} else {
				subCost = m.substituteCost
				if m.specialEnabled {
					if to, ok := m.specialTable[ai]; ok && to == bj {
						subCost = m.specialCost
					}
				}
			}

			best = d[(i-1)*cols+j] + m.deleteCost // delete a[i-1]
			if cand = d[i*cols+j-1] + m.insertCost; cand < best { // insert b[j-1]
				best = cand
			}
			if cand = d[(i-1)*cols+j-1] + subCost; cand < best { // substitute / match
				best = cand
			}

			// Sealed transposition: swap the trailing pairs and
			// consume them for good.
			if m.finalTransposeEnabled && i > 1 && j > 1 && a[i-2] == bj && ai == b[j-2] {
				if cand = d[(i-2)*cols+j-2] + m.finalTransposeCost; cand < best {
					best = cand
				}
			}

			// Reusable transposition: swap the last-seen matching
			// pair, paying delete/insert for every rune skipped in
			// between; the swapped runes remain editable afterwards.
			if m.transposeEnabled && swapRow > 0 && swapCol > 0 {
				cand = d[(swapRow-1)*cols+swapCol-1] +
					(i-swapRow-1)*m.deleteCost +
					(j-swapCol-1)*m.insertCost +
					m.transposeCost
				if cand < best {
					best = cand
				}
			}

			d[i*cols+j] = best
		}
		if m.transposeEnabled {
			lastRow[ai] = i
		}
	}

	return d[srcLen*cols+tgtLen]
}
