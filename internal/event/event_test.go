package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(WaveEnded, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(WaveEnded, ListenerFunc(func(Event) { order = append(order, "second") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { order = append(order, "other") }))

	d.Dispatch(Event{Type: WaveEnded})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSubscribeAllAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	all := &recorder{}
	one := &recorder{}
	d.SubscribeAll(all)
	d.Subscribe(EnemyKilled, one)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Unsubscribe(EnemyKilled, one)
	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: GameWon})

	assert.Equal(t, []EventType{EnemyKilled}, one.got)
	assert.Equal(t, []EventType{EnemyKilled, EnemyKilled, GameWon}, all.got)
}
