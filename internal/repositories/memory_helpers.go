package repositories

import "sort"

func sortByID[T any](items []T, id func(T) uint) {
	sort.Slice(items, func(i, j int) bool {
		return id(items[i]) < id(items[j])
	})
}
