package dag

import (
	"sort"

	"personalfinancedss/internal/core/dagerr"
)

// resolve computes a topological order over every node in r using Kahn's
// algorithm, the same approach as mbms.dependencyResolver.topologicalSort.
// Unlike mbms (which pulls from a FIFO queue seeded by map iteration,
// making ties nondeterministic), the frontier of zero-in-degree nodes is
// re-sorted by insertion sequence on every pop, satisfying spec.md §4.D's
// "tie-break among nodes with no mutual dependency is by insertion order"
// requirement exactly.
func (r *registry) resolve() ([]string, error) {
	ids := r.ids()

	inDegree := make(map[string]int, len(ids))
	dependents := make(map[string][]string, len(ids))

	for _, id := range ids {
		node, _ := r.get(id)
		for _, dep := range node.Dependencies() {
			if _, ok := r.get(dep); !ok {
				return nil, &dagerr.MissingDependency{Node: id, Dep: dep}
			}
			inDegree[id]++
			dependents[dep] = append(dependents[dep], id)
		}
	}

	frontier := make([]string, 0, len(ids))
	for _, id := range ids {
		if inDegree[id] == 0 {
			frontier = append(frontier, id)
		}
	}

	order := make([]string, 0, len(ids))
	for len(frontier) > 0 {
		sort.Slice(frontier, func(i, j int) bool {
			return r.sequence(frontier[i]) < r.sequence(frontier[j])
		})

		current := frontier[0]
		frontier = frontier[1:]
		order = append(order, current)

		for _, dependent := range dependents[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				frontier = append(frontier, dependent)
			}
		}
	}

	if len(order) != len(ids) {
		placed := make(map[string]bool, len(order))
		for _, id := range order {
			placed[id] = true
		}
		var cycles []string
		for _, id := range ids {
			if !placed[id] {
				cycles = append(cycles, id)
			}
		}
		return nil, &dagerr.CycleDetected{Cycles: cycles}
	}

	return order, nil
}
