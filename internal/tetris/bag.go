package tetris

import "math/rand"

// Bag deals piece kinds from shuffled sets of all seven kinds.
// A new set is shuffled only after the previous one is used up, so no
// kind repeats within a set.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates an empty bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next pops the next kind, refilling the bag first when it is empty.
func (b *Bag) Next() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.queue)
}

// refill replaces the queue with a uniform permutation of all kinds.
// rand.Shuffle is a Fisher-Yates shuffle.
func (b *Bag) refill() {
	b.queue = Kinds()
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
