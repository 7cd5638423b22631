package resolve

import (
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/types"
)

// index maps each present key of right to the positions holding it, in order.
func index[R any, K comparable](right []R, key func(R) types.Null[K]) map[K][]int {
	idx := make(map[K][]int, len(right))
	for i, r := range right {
		if k, ok := key(r).Get(); ok {
			idx[k] = append(idx[k], i)
		}
	}
	return idx
}

// leftJoin calls emit for every output row of left joined to right. match is nil
// for left rows without a partner.
func leftJoin[L, R any, K comparable](
	left []L,
	right []R,
	leftKey func(L) types.Null[K],
	rightKey func(R) types.Null[K],
	emit func(l L, match *R),
) {
	idx := index(right, rightKey)
	for _, l := range left {
		k, ok := leftKey(l).Get()
		if !ok || len(idx[k]) == 0 {
			emit(l, nil)
			continue
		}
		for _, i := range idx[k] {
			emit(l, &right[i])
		}
	}
}

func labelKey(l datamodel.ReconciledLabel) types.Null[string] {
	return types.Some(l.Key)
}
