// SPDX-License-Identifier: MIT

package autgroup

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlcode/bincode"
	"github.com/katalvlaran/lvlcode/partition"
)

// Options configures the backtracking search.
type Options struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	// It is checked once per tree node, so a cancelled search returns
	// promptly without tearing down mid-refinement.
	Ctx context.Context

	// CanonicalOnly skips a subtree whenever every child of the current
	// node is provably equivalent, descending into a single child instead.
	// The canonical labeling stays exact; Order and Generators are cleared
	// in the result because skipped leaves are no longer counted.
	CanonicalOnly bool

	// OnNode(depth, invariant) is called once per refined node with the
	// node's depth and its refinement invariant.
	OnNode func(depth, invariant int)
}

// DefaultOptions returns the zero configuration: background context, full
// enumeration, no hook.
func DefaultOptions() *Options { return &Options{} }

// Result holds the outcome of a completed search.
type Result struct {
	// Order is the automorphism group order, 1 for the trivial group.
	// Zero when CanonicalOnly pruning skipped leaves.
	Order int64

	// Generators are the discovered non-identity automorphisms as column
	// permutations, deduplicated, in discovery order. They generate the
	// full group. Nil when CanonicalOnly pruning skipped leaves.
	Generators [][]int

	// Base is the sequence of columns individualized along the leftmost
	// path of the tree; the pointwise stabilizer of Base in the group is
	// trivial.
	Base []int

	// CanonicalLabeling is the minimal leaf under the code's comparator:
	// position i of the canonical form holds original column
	// CanonicalLabeling[i]. Tools reporting the column-to-position
	// convention list the inverse of this permutation. Two codes are
	// equivalent iff their canonical forms coincide.
	CanonicalLabeling []int
}

// Complexity: O(leaves * refinement cost); leaves is bounded by degree! but
// collapses to the group order times the orbit count in practice.
// Search computes the automorphism group and canonical labeling of c,
// optionally restricted to relabelings respecting the starting column
// partition base (nil means no restriction).
//
// Stage 1 (Validate): non-nil code, base partitions the columns.
// Stage 2 (Prepare): fresh column stack seeded from base, c.Reset(), root
// refinement.
// Stage 3 (Execute): depth-first individualize-and-refine over the first
// non-singleton column cell, members ascending; leaves feed the order,
// generator and canonical-labeling accumulators.
// Stage 4 (Finalize): package the accumulators; clear Order/Generators
// under CanonicalOnly.
//
// Errors: ErrNilCode, ErrBadBase, context errors propagated verbatim.
func Search(c bincode.Code, base [][]int, opts *Options) (*Result, error) {
	// Validate the code
	if c == nil {
		return nil, ErrNilCode
	}

	// Prepare context and options
	o := opts
	if o == nil {
		o = DefaultOptions()
	}
	ctx := o.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	// Prepare the column stack. Column split keys are word-cell sizes, so
	// the key space is the word count.
	degree := c.Degree()
	cols, err := partition.NewStack(degree, c.NWords())
	if err != nil {
		return nil, err
	}
	if base != nil {
		if err = cols.SeedFromPartition(base); err != nil {
			return nil, ErrBadBase
		}
	}

	// Restore the virgin word partition and re-arm the refinement seed.
	c.Reset()

	s := &searcher{
		code:   c,
		cols:   cols,
		ctx:    ctx,
		opts:   o,
		degree: degree,
		sigma:  make([]int, degree),
		seen:   map[string]struct{}{},
	}
	s.seen[permKey(identityPerm(degree))] = struct{}{} // never emit identity

	// Root refinement and descent.
	inv, err := bincode.Refine(cols, c, nil)
	if err != nil {
		return nil, err
	}
	s.observe(0, inv)
	if err = s.dfs(); err != nil {
		return nil, err
	}

	res := &Result{
		Order:             s.order,
		Generators:        s.gens,
		Base:              s.base,
		CanonicalLabeling: s.best,
	}
	if o.CanonicalOnly {
		// Skipped leaves invalidate the counting accumulators.
		res.Order = 0
		res.Generators = nil
	}

	return res, nil
}

// searcher carries the depth-first traversal state of one Search call.
type searcher struct {
	code   bincode.Code
	cols   *partition.Stack
	ctx    context.Context
	opts   *Options
	degree int

	path []int // columns individualized along the current path

	gamma0 []int // first leaf labeling
	inv0   []int // inverse of gamma0
	base   []int // path snapshot at the first leaf
	best   []int // minimal leaf so far under the comparator
	sigma  []int // automorphism scratch, reused per leaf

	order int64
	gens  [][]int
	seen  map[string]struct{} // emitted generators plus the identity
}

// observe fires the OnNode hook when one is installed.
func (s *searcher) observe(depth, invariant int) {
	if s.opts.OnNode != nil {
		s.opts.OnNode(depth, invariant)
	}
}

// dfs explores the subtree rooted at the current stack state.
func (s *searcher) dfs() error {
	// One cancellation probe per node.
	if err := s.ctx.Err(); err != nil {
		return err
	}

	if s.cols.IsDiscrete() {
		return s.leaf()
	}

	// Branch on the first non-singleton column cell, members ascending so
	// the traversal order is independent of the cell's internal order.
	start, _ := s.cols.FirstNonSingleton()
	end := s.cols.CellEnd(start)
	members := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		members = append(members, s.cols.Entry(i))
	}
	sort.Ints(members)

	if s.opts.CanonicalOnly {
		ok, err := bincode.AllChildrenEquivalent(s.cols, s.code)
		if err != nil {
			return err
		}
		if ok {
			members = members[:1] // any child yields the same canonical form
		}
	}

	for _, v := range members {
		s.cols.Push()
		st, err := s.cols.SplitElement(v)
		if err != nil {
			return err
		}
		inv, err := bincode.Refine(s.cols, s.code, []int{st})
		if err != nil {
			return err
		}
		s.path = append(s.path, v)
		s.observe(s.cols.Depth(), inv)

		if err = s.dfs(); err != nil {
			return err
		}

		s.path = s.path[:len(s.path)-1]
		if err = s.cols.Pop(); err != nil {
			return err
		}
	}

	return nil
}

// leaf folds one discrete column partition into the accumulators.
func (s *searcher) leaf() error {
	g := make([]int, s.degree)
	if err := s.cols.Labeling(g); err != nil {
		return err
	}

	// First leaf: fix gamma0, its inverse, the base and the running minimum.
	if s.gamma0 == nil {
		s.gamma0 = g
		s.inv0 = make([]int, s.degree)
		for pos, col := range g {
			s.inv0[col] = pos
		}
		s.base = append([]int(nil), s.path...)
		s.best = append([]int(nil), g...)
		s.order = 1

		return nil
	}

	// A leaf equivalent to gamma0 certifies the automorphism γ∘γ0⁻¹.
	if s.code.Compare(g, s.gamma0) == 0 {
		s.order++
		for i := 0; i < s.degree; i++ {
			s.sigma[i] = g[s.inv0[i]]
		}
		key := permKey(s.sigma)
		if _, dup := s.seen[key]; !dup {
			s.seen[key] = struct{}{}
			s.gens = append(s.gens, append([]int(nil), s.sigma...))
		}
	}

	// Track the minimal leaf for the canonical labeling.
	if s.code.Compare(g, s.best) < 0 {
		copy(s.best, g)
	}

	return nil
}

// identityPerm returns the identity permutation of length n.
func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// permKey renders a permutation as a map key.
func permKey(p []int) string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
