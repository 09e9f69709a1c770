package driver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"derive-generator/internal/analyze"
	"derive-generator/internal/plan"
)

// flattenEdge is a flattened field of one declaration.
type flattenEdge struct {
	From   string
	Field  string
	Target string // last path segment of the field type
}

// flattenEdges lists the flattened fields of every declaration deriving d,
// in name order.
func flattenEdges(g *analyze.ItemGraph, d plan.DeriveEnum) []flattenEdge {
	var edges []flattenEdge

	for _, name := range g.Names() {
		if !g.HasDerive(name, d.String()) {
			continue
		}

		p, err := plan.Resolve(d, g.Items[name])
		if err != nil {
			continue
		}

		for _, f := range p.(*plan.ProjectionPlan).Fields {
			if f.Mode != plan.ProjectFlatten {
				continue
			}

			target, ok := f.Field.Type.LastSegment()
			if !ok {
				continue
			}

			edges = append(edges, flattenEdge{From: name, Field: f.Field.Label(), Target: target})
		}
	}

	return edges
}

// checkFlattens warns about flattened fields whose type is not known to
// derive the same projection, and about flatten cycles. Types outside the
// inputs are not reported: they may come from another crate.
func (d *Driver) checkFlattens(report *Report) {
	g := report.Graph()

	for _, derive := range []plan.DeriveEnum{plan.DeriveInner, plan.DeriveRecord} {
		edges := flattenEdges(g, derive)

		for _, e := range edges {
			if _, known := g.Items[e.Target]; known && !g.HasDerive(e.Target, derive.String()) {
				report.Diagnostics.AddWarning("flatten_target",
					fmt.Sprintf("field %s flattens %s, which does not derive %s", e.Field, e.Target, derive),
					e.From, "")
			}
		}

		if cycle := flattenCycle(edges); len(cycle) > 0 {
			report.Diagnostics.AddWarning("flatten_cycle",
				fmt.Sprintf("%s flatten cycle: %s", derive, strings.Join(cycle, ", ")),
				cycle[0], "")
		}
	}
}

// flattenCycle returns the sorted names of the declarations left unordered
// by a flatten cycle, or nothing.
func flattenCycle(edges []flattenEdge) []string {
	index := map[string]int{}

	var names []string

	add := func(name string) {
		if _, ok := index[name]; !ok {
			index[name] = len(names)
			names = append(names, name)
		}
	}

	for _, e := range edges {
		add(e.From)
		add(e.Target)
	}

	deps := make([][]int, len(names))
	for _, e := range edges {
		from := index[e.From]
		deps[from] = append(deps[from], index[e.Target])
	}

	order, err := topoSort(len(names), func(i int) []int { return deps[i] })
	if err == nil {
		return nil
	}

	done := make([]bool, len(names))
	for _, i := range order {
		done[i] = true
	}

	var cycle []string

	for i, name := range names {
		if !done[i] {
			cycle = append(cycle, name)
		}
	}

	sort.Strings(cycle)

	return cycle
}

var errCycle = errors.New("cycle detected")

// topoSort returns node indices so that every node comes after its
// dependencies. depsFn(i) yields the indices i depends on.
//
// The result is deterministic: when multiple nodes are available the smallest
// index goes first. On a cycle the partial order is returned with errCycle.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return order, errCycle
	}

	return order, nil
}
