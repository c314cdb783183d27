package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-varset/notify"
)

func TestSubscribeReceivesAllEvents(t *testing.T) {
	h := notify.New()

	var got []notify.Event
	h.Subscribe(func(ev notify.Event) { got = append(got, ev) })

	h.Notify(notify.Event{Name: "folder", Kind: notify.EventSet})
	h.Notify(notify.Event{Name: "mask", Kind: notify.EventReset})

	assert.Equal(t, []notify.Event{
		{Name: "folder", Kind: notify.EventSet},
		{Name: "mask", Kind: notify.EventReset},
	}, got)
}

func TestSubscribeNameFilters(t *testing.T) {
	h := notify.New()

	var got []notify.Event
	h.SubscribeName("folder", func(ev notify.Event) { got = append(got, ev) })

	h.Notify(notify.Event{Name: "mask", Kind: notify.EventSet})
	h.Notify(notify.Event{Name: "folder", Kind: notify.EventSet})

	assert.Equal(t, []notify.Event{{Name: "folder", Kind: notify.EventSet}}, got)
}

func TestUnsubscribe(t *testing.T) {
	h := notify.New()

	var global, named int
	g := h.Subscribe(func(notify.Event) { global++ })
	n := h.SubscribeName("folder", func(notify.Event) { named++ })

	h.Notify(notify.Event{Name: "folder"})
	assert.Equal(t, 1, global)
	assert.Equal(t, 1, named)

	g.Unsubscribe()
	n.Unsubscribe()
	n.Unsubscribe() // idempotent

	h.Notify(notify.Event{Name: "folder"})
	assert.Equal(t, 1, global)
	assert.Equal(t, 1, named)
}

func TestObserverMayResubscribeDuringNotify(t *testing.T) {
	h := notify.New()

	var second int
	h.Subscribe(func(notify.Event) {
		// Subscribing from inside an observer must not deadlock; the hub
		// releases its lock before fanning out.
		h.SubscribeName("other", func(notify.Event) { second++ })
	})

	h.Notify(notify.Event{Name: "folder"})
	h.Notify(notify.Event{Name: "other"})
	assert.Equal(t, 1, second)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "set", notify.EventSet.String())
	assert.Equal(t, "reset", notify.EventReset.String())
	assert.Equal(t, "initial-set", notify.EventInitialSet.String())
	assert.Equal(t, "unknown", notify.EventKind(99).String())
}
