// SPDX-License-Identifier: MIT

package busbranch

import "sort"

// Islands partitions the buses into electrically connected groups over the
// contributing branches. Each island is sorted ascending; islands are ordered
// by their first bus. A bus with no branch forms an island of its own.
//
// Time:   O(N log N + B) for N buses and B branches.
// Memory: O(N + B).
func (m *Model) Islands() [][]string {
	n := len(m.buses)
	adj := make([][]int, n)
	for _, br := range m.branches {
		i, j := m.index[br.From], m.index[br.To]
		if i == j {
			continue
		}
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}

	seen := make([]bool, n)
	var islands [][]string
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		island := make([]string, len(queue))
		for k, idx := range queue {
			island[k] = m.buses[idx]
		}
		islands = append(islands, island)
	}

	return islands
}
