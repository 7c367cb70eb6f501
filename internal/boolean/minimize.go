package boolean

import (
	"context"
	"fmt"
	"math/bits"
	"sort"
)

const (
	// MaxImplicants bounds the number of implicants alive in any one
	// merge round, the initial minterm set included.
	MaxImplicants = 1 << 18
	// maxMinimizeSteps bounds the total merge and cover work of one
	// minimization, counted in implicant-bit comparisons and coverage
	// lookups.
	maxMinimizeSteps = 1 << 25
)

// work is the step budget of one minimization. It also carries the
// caller's context so long rounds notice cancellation.
type work struct {
	ctx  context.Context
	left int
	tick int
}

func newWork(ctx context.Context) *work {
	return &work{ctx: ctx, left: maxMinimizeSteps}
}

func (w *work) spend(n int) error {
	w.left -= n
	if w.left < 0 {
		return fmt.Errorf("%w: more than %d steps needed", ErrTooComplex, maxMinimizeSteps)
	}
	w.tick += n
	if w.tick >= cancelStride {
		w.tick = 0
		return w.ctx.Err()
	}
	return nil
}

func tooManyImplicants(count int) error {
	return fmt.Errorf("%w: %d implicants in one round, the maximum is %d",
		ErrTooComplex, count, MaxImplicants)
}

// implicant is a product term over n variables. Bits set in mask are fixed
// positions whose required value is the matching bit of value; cleared mask
// bits are don't-cares. value never has bits outside mask.
type implicant struct {
	value uint32
	mask  uint32
}

func (im implicant) covers(minterm uint32) bool {
	return minterm&im.mask == im.value
}

func (im implicant) fixed() int {
	return bits.OnesCount32(im.mask)
}

func (im implicant) less(other implicant) bool {
	if im.value != other.value {
		return im.value < other.value
	}
	return im.mask < other.mask
}

func sortImplicants(ims []implicant) {
	sort.Slice(ims, func(i, j int) bool { return ims[i].less(ims[j]) })
}

// Minimize computes a sum-of-products expression over vars that is true
// exactly on the given minterms, using Quine-McCluskey prime implicant
// generation, essential implicant selection and a greedy cover for the rest.
//
// The result is deterministic: implicants are emitted in ascending
// (value, mask) order and literals follow variable order.
//
// Prime generation grows roughly as 3^n for dense functions, so the work is
// bounded: past MaxImplicants implicants in a round, or past the internal
// step budget, Minimize fails with ErrTooComplex.
func Minimize(vars []string, minterms []uint32) (Expr, error) {
	return MinimizeContext(context.Background(), vars, minterms)
}

// MinimizeContext is Minimize with cancellation. ctx is checked every merge
// round and periodically inside long rounds.
func MinimizeContext(ctx context.Context, vars []string, minterms []uint32) (Expr, error) {
	if err := CheckLimit(vars, HardMaxVariables); err != nil {
		return nil, err
	}
	n := len(vars)

	terms, err := normalizeMinterms(minterms, n)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return Const{Val: false}, nil
	}
	if uint64(len(terms)) == uint64(1)<<uint(n) {
		return Const{Val: true}, nil
	}
	if len(terms) > MaxImplicants {
		return nil, tooManyImplicants(len(terms))
	}

	w := newWork(ctx)
	primes, err := primeImplicants(w, terms, n)
	if err != nil {
		return nil, err
	}
	cover, err := selectCover(w, primes, terms, n)
	if err != nil {
		return nil, err
	}
	sortImplicants(cover)
	return renderCover(vars, cover), nil
}

// MinimizeTable minimizes the function described by t.
func MinimizeTable(t *Table) (Expr, error) {
	return MinimizeContext(context.Background(), t.Vars, t.Minterms())
}

// MinimizeTableContext minimizes the function described by t under ctx.
func MinimizeTableContext(ctx context.Context, t *Table) (Expr, error) {
	return MinimizeContext(ctx, t.Vars, t.Minterms())
}

// normalizeMinterms sorts and deduplicates minterms and rejects any that
// do not fit in n bits.
func normalizeMinterms(minterms []uint32, n int) ([]uint32, error) {
	limit := uint64(1) << uint(n)
	seen := make(map[uint32]struct{}, len(minterms))
	out := make([]uint32, 0, len(minterms))
	for _, m := range minterms {
		if uint64(m) >= limit {
			return nil, &MinimizationError{Minterm: m, Msg: "minterm out of range for variable count"}
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// primeImplicants repeatedly merges pairs of implicants with the same mask
// that differ in exactly one fixed bit. Every implicant that takes part in a
// merge is used; the unused ones of each round are the prime implicants.
func primeImplicants(w *work, minterms []uint32, n int) ([]implicant, error) {
	full := uint32(1)<<uint(n) - 1

	current := make(map[implicant]struct{}, len(minterms))
	for _, m := range minterms {
		current[implicant{value: m, mask: full}] = struct{}{}
	}

	var primes []implicant
	for len(current) > 0 {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.spend(len(current) * n); err != nil {
			return nil, err
		}

		next := make(map[implicant]struct{})
		used := make(map[implicant]bool)

		for im := range current {
			for b := 0; b < n; b++ {
				bit := uint32(1) << uint(b)
				// only look upward from the zero side so each pair is seen once
				if im.mask&bit == 0 || im.value&bit != 0 {
					continue
				}
				partner := implicant{value: im.value | bit, mask: im.mask}
				if _, ok := current[partner]; !ok {
					continue
				}
				used[im] = true
				used[partner] = true
				next[implicant{value: im.value, mask: im.mask &^ bit}] = struct{}{}
				if len(next) > MaxImplicants {
					return nil, tooManyImplicants(len(next))
				}
			}
		}

		for im := range current {
			if !used[im] {
				primes = append(primes, im)
			}
		}
		current = next
	}

	sortImplicants(primes)
	return primes, nil
}

// selectCover picks a set of primes covering every minterm: all essential
// primes first, then greedily the prime covering the most uncovered
// minterms, preferring more don't-cares and then the smaller encoding.
// Redundant greedy picks are dropped at the end.
func selectCover(w *work, primes []implicant, minterms []uint32, n int) ([]implicant, error) {
	full := uint32(1)<<uint(n) - 1
	index := make(map[uint32]int, len(minterms))
	for mi, m := range minterms {
		index[m] = mi
	}

	// walk each prime's subcube instead of testing it against every minterm
	coverage := make([][]int, len(primes)) // prime -> minterm indices
	coveredBy := make([][]int, len(minterms))
	total := 0
	for pi, p := range primes {
		free := full &^ p.mask
		size := 1 << uint(bits.OnesCount32(free))
		if err := w.spend(size); err != nil {
			return nil, err
		}
		total += size
		for s := free; ; s = (s - 1) & free {
			if mi, ok := index[p.value|s]; ok {
				coverage[pi] = append(coverage[pi], mi)
				coveredBy[mi] = append(coveredBy[mi], pi)
			}
			if s == 0 {
				break
			}
		}
	}

	selected := make([]bool, len(primes))
	done := make([]bool, len(minterms))
	remaining := len(minterms)

	choose := func(pi int) {
		selected[pi] = true
		for _, mi := range coverage[pi] {
			if !done[mi] {
				done[mi] = true
				remaining--
			}
		}
	}

	for mi, ps := range coveredBy {
		switch len(ps) {
		case 0:
			return nil, &MinimizationError{Minterm: minterms[mi], Msg: "no prime implicant covers minterm"}
		case 1:
			if !selected[ps[0]] {
				choose(ps[0])
			}
		}
	}

	var picks []int
	for remaining > 0 {
		if err := w.spend(total); err != nil {
			return nil, err
		}
		best, bestGain := -1, 0
		for pi := range primes {
			if selected[pi] {
				continue
			}
			gain := 0
			for _, mi := range coverage[pi] {
				if !done[mi] {
					gain++
				}
			}
			if gain == 0 {
				continue
			}
			// primes are sorted ascending, so on a full tie the earlier one wins
			if best < 0 || gain > bestGain ||
				(gain == bestGain && primes[pi].fixed() < primes[best].fixed()) {
				best, bestGain = pi, gain
			}
		}
		if best < 0 {
			for mi := range minterms {
				if !done[mi] {
					return nil, &MinimizationError{Minterm: minterms[mi], Msg: "cover selection stalled"}
				}
			}
			return nil, &MinimizationError{Msg: "cover bookkeeping out of sync"}
		}
		choose(best)
		picks = append(picks, best)
	}

	// drop greedy picks made redundant by later ones, newest first
	count := make([]int, len(minterms))
	for pi := range primes {
		if selected[pi] {
			for _, mi := range coverage[pi] {
				count[mi]++
			}
		}
	}
	for i := len(picks) - 1; i >= 0; i-- {
		pi := picks[i]
		redundant := true
		for _, mi := range coverage[pi] {
			if count[mi] < 2 {
				redundant = false
				break
			}
		}
		if !redundant {
			continue
		}
		selected[pi] = false
		for _, mi := range coverage[pi] {
			count[mi]--
		}
	}

	cover := make([]implicant, 0, len(primes))
	for pi, p := range primes {
		if selected[pi] {
			cover = append(cover, p)
		}
	}
	return cover, nil
}

// renderCover turns implicants into an OR of ANDs of literals.
func renderCover(vars []string, cover []implicant) Expr {
	if len(cover) == 0 {
		return Const{Val: false}
	}

	var sum Expr
	for _, im := range cover {
		if im.mask == 0 {
			return Const{Val: true}
		}
		var product Expr
		for i, name := range vars {
			bit := uint32(1) << uint(i)
			if im.mask&bit == 0 {
				continue
			}
			var lit Expr = Var{Name: name}
			if im.value&bit == 0 {
				lit = Not{X: lit}
			}
			product = conj(product, lit)
		}
		sum = disj(sum, product)
	}
	return sum
}
