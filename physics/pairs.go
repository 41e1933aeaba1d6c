package physics

import "github.com/lixenwraith/arena/entity"

// PairKey is an unordered pair of entity IDs, smaller ID first
type PairKey struct {
	Lo, Hi entity.ID
}

// MakePairKey canonicalizes (a, b) and (b, a) to the same key
func MakePairKey(a, b entity.ID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}

// Has reports whether id is a member of the pair
func (k PairKey) Has(id entity.ID) bool {
	return k.Lo == id || k.Hi == id
}

// PairTable holds the last overlap flag of every tracked pair
// Owned by the simulation; entities carry no relationship state
type PairTable struct {
	flags map[PairKey]bool
}

func NewPairTable() *PairTable {
	return &PairTable{flags: make(map[PairKey]bool)}
}

// Get returns the stored flag; absent pairs read as false
func (t *PairTable) Get(k PairKey) bool {
	return t.flags[k]
}

func (t *PairTable) Set(k PairKey, overlapping bool) {
	t.flags[k] = overlapping
}

// Forget drops every pair involving id, used when an entity is swept
func (t *PairTable) Forget(id entity.ID) {
	for k := range t.flags {
		if k.Has(id) {
			delete(t.flags, k)
		}
	}
}

func (t *PairTable) Len() int {
	return len(t.flags)
}
