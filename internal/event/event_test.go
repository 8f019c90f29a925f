package event

import "testing"

type countingListener struct {
	got []EventType
}

func (l *countingListener) OnEvent(e Event) { l.got = append(l.got, e.Type) }

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(GoldChanged, ListenerFunc(func(Event) { order = append(order, "first") }))
	second := &countingListener{}
	d.Subscribe(GoldChanged, second)
	all := &countingListener{}
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: GoldChanged, Data: GoldChangedData{Gold: 10, Change: 10}})
	d.Dispatch(Event{Type: LivesChanged})

	if len(order) != 1 || len(second.got) != 1 {
		t.Fatalf("typed listeners called %d/%d times", len(order), len(second.got))
	}
	if len(all.got) != 2 || all.got[1] != LivesChanged {
		t.Fatalf("catch-all listener got %v", all.got)
	}

	d.Unsubscribe(GoldChanged, second)
	d.Dispatch(Event{Type: GoldChanged})
	if len(second.got) != 1 {
		t.Fatal("unsubscribed listener still called")
	}
	if len(order) != 2 {
		t.Fatal("remaining listener not called")
	}
}
