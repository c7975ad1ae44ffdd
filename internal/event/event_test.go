package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(HitOccurred, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(HitOccurred, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: HitOccurred, Data: Hit{X: 1}})
	d.Dispatch(Event{Type: UnitKilled})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, UnitSpawned, UnitKilled)

	d.Dispatch(Event{Type: UnitSpawned})
	d.Unsubscribe(UnitSpawned, r)
	d.Dispatch(Event{Type: UnitSpawned})
	d.Dispatch(Event{Type: UnitKilled})

	assert.Len(t, r.got, 2)
	assert.Equal(t, UnitKilled, r.got[1].Type)
}

func TestUnsubscribeSkipsFuncListeners(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	f := ListenerFunc(func(Event) { calls++ })
	r := &recorder{}
	d.Subscribe(MatchEnded, f)
	d.Subscribe(MatchEnded, r)

	d.Unsubscribe(MatchEnded, f)
	d.Unsubscribe(MatchEnded, r)
	d.Dispatch(Event{Type: MatchEnded})

	assert.Equal(t, 1, calls)
	assert.Empty(t, r.got)
}
