package tlsfp

import "math/rand"

// pinnedTrailingExtensions lists extension IDs that Chrome's permutation
// algorithm never moves out of trailing position: padding stays at the
// tail so its length calculation sees the final record size, and
// pre_shared_key must be the final extension per RFC 8446 §4.2.11.
var pinnedTrailingExtensions = map[uint16]bool{
	extPadding:      true,
	extPreSharedKey: true,
}

// permuteExtensionOrder returns a copy of order with every extension
// except the pinned trailing ones shuffled via Fisher-Yates, and the
// pinned ones appended at the end in their original relative order,
// except that pre_shared_key always comes after every other one. This
// mirrors Chrome's per-connection ClientHello extension permutation
// (shipped behind chrome://flags/#tls13-variant, on by default since
// Chrome 106), which a probe must see change across connections while
// the trailing, order-sensitive extensions never move.
func permuteExtensionOrder(order []uint16, rng *rand.Rand) []uint16 {
	movable := make([]uint16, 0, len(order))
	pinned := make([]uint16, 0)
	psk := make([]uint16, 0)
	for _, id := range order {
		switch {
		case id == extPreSharedKey:
			psk = append(psk, id)
		case pinnedTrailingExtensions[id]:
			pinned = append(pinned, id)
		default:
			movable = append(movable, id)
		}
	}
	rng.Shuffle(len(movable), func(i, j int) {
		movable[i], movable[j] = movable[j], movable[i]
	})
	return append(append(movable, pinned...), psk...)
}
