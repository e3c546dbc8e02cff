package output

import (
	"sort"

	"seqpar/internal/stats"
)

// SortEntries orders index entries by global index.
func SortEntries(list []stats.Entry) {
	sort.Slice(list, func(i, j int) bool { return list[i].Index < list[j].Index })
}
