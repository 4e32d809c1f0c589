package breakout

// EffectKind identifies a deferred game effect.
type EffectKind int

const (
	EffectWideRevert EffectKind = iota // Restore the paddle to its base width
)

// String returns the effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectWideRevert:
		return "wide-revert"
	default:
		return "unknown"
	}
}

// ScheduledEffect is an effect waiting for its tick.
type ScheduledEffect struct {
	Kind    EffectKind
	DueTick int
}

// EffectQueue holds deferred effects keyed by kind.
// At most one effect of each kind is pending at a time.
type EffectQueue struct {
	items []ScheduledEffect
}

// Schedule queues an effect, replacing any pending effect of the same kind.
func (q *EffectQueue) Schedule(kind EffectKind, dueTick int) {
	for i := range q.items {
		if q.items[i].Kind == kind {
			q.items[i].DueTick = dueTick
			return
		}
	}
	q.items = append(q.items, ScheduledEffect{Kind: kind, DueTick: dueTick})
}

// Cancel drops the pending effect of the given kind.
// Returns true if one was pending.
func (q *EffectQueue) Cancel(kind EffectKind) bool {
	for i, e := range q.items {
		if e.Kind == kind {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the pending effect of the given kind, if any.
func (q *EffectQueue) Pending(kind EffectKind) (ScheduledEffect, bool) {
	for _, e := range q.items {
		if e.Kind == kind {
			return e, true
		}
	}
	return ScheduledEffect{}, false
}

// Due removes and returns every effect whose tick has come, earliest first.
func (q *EffectQueue) Due(now int) []ScheduledEffect {
	var due []ScheduledEffect
	active := q.items[:0]

	for _, e := range q.items {
		if e.DueTick <= now {
			due = append(due, e)
		} else {
			active = append(active, e)
		}
	}
	q.items = active

	// Insertion sort: the queue holds a handful of items at most
	for i := 1; i < len(due); i++ {
		for j := i; j > 0 && due[j].DueTick < due[j-1].DueTick; j-- {
			due[j], due[j-1] = due[j-1], due[j]
		}
	}
	return due
}

// Clear drops every pending effect.
func (q *EffectQueue) Clear() {
	q.items = q.items[:0]
}

// Len returns the number of pending effects.
func (q *EffectQueue) Len() int {
	return len(q.items)
}

// Items returns a copy of the pending effects.
func (q *EffectQueue) Items() []ScheduledEffect {
	out := make([]ScheduledEffect, len(q.items))
	copy(out, q.items)
	return out
}
