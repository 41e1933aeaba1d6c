package physics

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/arena/entity"
)

// Contact is an edge (Entered or Exited) observed during a detection pass
type Contact struct {
	Pair   PairKey
	State  CollisionState
	Player *entity.Entity
	Other  *entity.Entity
}

// Detector runs player-centric pairwise collision detection each tick
type Detector struct {
	pairs *PairTable
	log   *zap.Logger

	contacts []Contact
}

// NewDetector creates a detector with its own pair table; nil log is replaced by a no-op
func NewDetector(log *zap.Logger) *Detector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Detector{
		pairs:    NewPairTable(),
		log:      log,
		contacts: make([]Contact, 0, 8),
	}
}

// Pairs exposes the relationship table
func (d *Detector) Pairs() *PairTable {
	return d.pairs
}

// Check advances one pair and fires both callbacks on an edge
// The stored flag always equals this tick's raw overlap
func (d *Detector) Check(player, other *entity.Entity) CollisionState {
	key := MakePairKey(player.ID, other.ID)
	was := d.pairs.Get(key)
	now := Collide(player, other)
	state := Transition(was, now)

	switch state {
	case Entered:
		d.pairs.Set(key, true)
		entity.Entered(player, other)
		entity.Entered(other, player)
		d.log.Debug("collision entered",
			zap.Stringer("player", player),
			zap.Stringer("other", other))
	case Exited:
		d.pairs.Set(key, false)
		entity.Exited(player, other)
		entity.Exited(other, player)
		d.log.Debug("collision exited",
			zap.Stringer("player", player),
			zap.Stringer("other", other))
	}
	return state
}

// Run checks the player against every enemy then every other player
// Returned contacts are only valid until the next Run
func (d *Detector) Run(player *entity.Entity, enemies, others []*entity.Entity) []Contact {
	d.contacts = d.contacts[:0]
	d.runAll(player, enemies)
	d.runAll(player, others)
	return d.contacts
}

func (d *Detector) runAll(player *entity.Entity, group []*entity.Entity) {
	for _, other := range group {
		if other == player {
			continue
		}
		state := d.Check(player, other)
		if state == Entered || state == Exited {
			d.contacts = append(d.contacts, Contact{
				Pair:   MakePairKey(player.ID, other.ID),
				State:  state,
				Player: player,
				Other:  other,
			})
		}
	}
}

// Forget drops pair rows for a swept entity
func (d *Detector) Forget(id entity.ID) {
	d.pairs.Forget(id)
}
