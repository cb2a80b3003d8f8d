/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package listing

import (
	"container/heap"
	"sort"
)

// topKHeap implements a max-heap for top-K selection
// When we want the smallest K elements, we use a max-heap:
// - If new element is smaller than max, pop max and push new element
// - At the end, heap contains K smallest elements
type topKHeap struct {
	indices []int
	values  []any
	compare CompareFunc
}

func (h *topKHeap) Len() int { return len(h.indices) }

// Less puts the worst of the kept elements at the top.
func (h *topKHeap) Less(i, j int) bool {
	return h.order(h.indices[i], h.indices[j]) > 0
}

func (h *topKHeap) Swap(i, j int) {
	h.indices[i], h.indices[j] = h.indices[j], h.indices[i]
}

func (h *topKHeap) Push(x any) {
	h.indices = append(h.indices, x.(int))
}

func (h *topKHeap) Pop() any {
	old := h.indices
	n := len(old)
	x := old[n-1]
	h.indices = old[0 : n-1]
	return x
}

// order compares two value indices. Equal values keep their input order.
func (h *topKHeap) order(i, j int) int {
	if c := h.compare(h.values[i], h.values[j]); c != 0 {
		return c
	}
	return i - j
}

// sortedTopK returns the first limit values in compare order.
// Uses heap-based selection: O(n log k) instead of O(n log n) for full sort.
func sortedTopK(values []any, compare CompareFunc, limit int) []any {
	if len(values) == 0 || limit <= 0 {
		return []any{}
	}
	limit = min(limit, len(values))

	h := &topKHeap{
		indices: make([]int, 0, limit),
		values:  values,
		compare: compare,
	}

	// Initialize heap with first K elements
	for i := 0; i < limit; i++ {
		h.indices = append(h.indices, i)
	}
	heap.Init(h)

	// Process remaining elements
	for i := limit; i < len(values); i++ {
		if h.order(i, h.indices[0]) < 0 {
			heap.Pop(h)
			heap.Push(h, i)
		}
	}

	sort.Slice(h.indices, func(a, b int) bool {
		return h.order(h.indices[a], h.indices[b]) < 0
	})
	result := make([]any, len(h.indices))
	for i, index := range h.indices {
		result[i] = values[index]
	}
	return result
}
