package breakout

import "testing"

func TestEffectQueueScheduleReplaces(t *testing.T) {
	var q EffectQueue
	q.Schedule(EffectWideRevert, 100)
	q.Schedule(EffectWideRevert, 250)

	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
	e, ok := q.Pending(EffectWideRevert)
	if !ok || e.DueTick != 250 {
		t.Errorf("Pending() = %+v, %v; want due 250", e, ok)
	}
}

func TestEffectQueueDue(t *testing.T) {
	const other EffectKind = 7

	var q EffectQueue
	q.Schedule(other, 30)
	q.Schedule(EffectWideRevert, 20)

	if due := q.Due(19); len(due) != 0 {
		t.Errorf("Due(19) returned %v, want nothing", due)
	}

	due := q.Due(30)
	if len(due) != 2 {
		t.Fatalf("Due(30) returned %d effects, want 2", len(due))
	}
	if due[0].DueTick != 20 || due[1].DueTick != 30 {
		t.Errorf("Due(30) order = %v, want earliest first", due)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Due = %d, want 0", q.Len())
	}
}

func TestEffectQueueCancelAndClear(t *testing.T) {
	var q EffectQueue
	q.Schedule(EffectWideRevert, 10)

	if !q.Cancel(EffectWideRevert) {
		t.Error("Cancel should report the pending effect")
	}
	if q.Cancel(EffectWideRevert) {
		t.Error("second Cancel should find nothing")
	}

	q.Schedule(EffectWideRevert, 10)
	q.Clear()
	if _, ok := q.Pending(EffectWideRevert); ok {
		t.Error("Clear should drop pending effects")
	}
}
