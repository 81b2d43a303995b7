package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestManager_DispatchOrder(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypeAnnotationsChanged, func(e Event) bool {
		got = append(got, "first")
		return false
	})
	m.Subscribe(TypeAnnotationsChanged, func(e Event) bool {
		data := e.Data.(AnnotationsChangedData)
		got = append(got, "second", e.Type.String())
		if data.Count != 3 {
			t.Errorf("Count = %d", data.Count)
		}
		return false
	})
	m.Subscribe(TypeHistoryChanged, func(Event) bool {
		got = append(got, "other")
		return false
	})

	m.Dispatch(TypeAnnotationsChanged, AnnotationsChangedData{Count: 3})

	want := []string{"first", "second", "AnnotationsChanged"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("handlers (-want +got):\n%s", diff)
	}
}

func TestManager_ConsumedStopsDelivery(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeKeyPressed, func(Event) bool { calls++; return true })
	m.Subscribe(TypeKeyPressed, func(Event) bool { calls++; return false })

	m.Dispatch(TypeKeyPressed, KeyPressedData{})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestManager_SubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		m.Subscribe(TypeAppReady, func(Event) bool { calls++; return false })
		return false
	})

	m.Dispatch(TypeAppReady, AppReadyData{})
	if calls != 0 {
		t.Errorf("handler added during dispatch ran %d time(s)", calls)
	}
	m.Dispatch(TypeAppReady, AppReadyData{})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestType_String(t *testing.T) {
	if got := TypeUnknown.String(); got != "Unknown" {
		t.Errorf("TypeUnknown = %q", got)
	}
	if got := TypeDocumentExported.String(); got != "DocumentExported" {
		t.Errorf("TypeDocumentExported = %q", got)
	}
}
