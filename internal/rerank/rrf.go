// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package rerank fuses multiple ranked lists into one using Reciprocal Rank
// Fusion.
package rerank

// Fuse combines lists of comparable items into a single ranking using
// Reciprocal Rank Fusion: score(item) = sum over lists of 1/((rank+1)+constant),
// where rank is zero-based. Items absent from a list contribute zero from
// that list. The top k items by total score are returned; ties break by
// first-seen order (the item encountered earliest across the input lists
// wins).
func Fuse[T comparable](lists [][]T, constant int, k int) []T {
	scores := make(map[T]float64)
	order := make(map[T]int)
	next := 0

	for _, list := range lists {
		for rank, item := range list {
			if _, seen := order[item]; !seen {
				order[item] = next
				next++
			}
			scores[item] += 1.0 / float64((rank+1)+constant)
		}
	}

	items := make([]T, 0, len(scores))
	for item := range scores {
		items = append(items, item)
	}

	sortByScoreDesc(items, scores, order)

	if k >= 0 && k < len(items) {
		items = items[:k]
	}
	return items
}

func sortByScoreDesc[T comparable](items []T, scores map[T]float64, order map[T]int) {
	// Simple insertion sort is fine: result sets are small (top-k over a
	// handful of candidate lists), and it keeps the tie-break logic explicit.
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && less(items[j-1], items[j], scores, order) {
			items[j-1], items[j] = items[j], items[j-1]
			j--
		}
	}
}

// less reports whether b should sort before a (i.e. a and b are out of
// order): higher score wins, ties keep first-seen order.
func less[T comparable](a, b T, scores map[T]float64, order map[T]int) bool {
	if scores[a] != scores[b] {
		return scores[b] > scores[a]
	}
	return order[b] < order[a]
}
