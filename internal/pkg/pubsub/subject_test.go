// internal/pkg/pubsub/subject_test.go
package pubsub

import (
	"reflect"
	"testing"
)

func TestSubjectValueReturnsInitial(t *testing.T) {
	s := NewSubject(42)

	if got := s.Value(); got != 42 {
		t.Fatalf("expected 42 got %d", got)
	}
}

func TestSubjectSubscriberSeesLatestImmediately(t *testing.T) {
	s := NewSubject("initial")
	s.Emit("latest")

	var got []string
	s.Subscribe(func(v string) {
		got = append(got, v)
	})

	if len(got) != 1 || got[0] != "latest" {
		t.Fatalf("expected immediate call with latest, got %v", got)
	}
}

func TestSubjectSubscriberSeesEveryEmissionInOrder(t *testing.T) {
	s := NewSubject(0)

	var got []int
	s.Subscribe(func(v int) {
		got = append(got, v)
	})

	s.Emit(1)
	s.Emit(2)
	s.Emit(3)

	want := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestSubjectMultipleSubscribers(t *testing.T) {
	s := NewSubject(0)

	var first, second []int
	s.Subscribe(func(v int) { first = append(first, v) })
	s.Emit(1)
	s.Subscribe(func(v int) { second = append(second, v) })
	s.Emit(2)

	if !reflect.DeepEqual(first, []int{0, 1, 2}) {
		t.Fatalf("first subscriber saw %v", first)
	}
	// The late subscriber starts from the value current at subscribe time
	if !reflect.DeepEqual(second, []int{1, 2}) {
		t.Fatalf("second subscriber saw %v", second)
	}
}

func TestSubjectUnsubscribeStopsDelivery(t *testing.T) {
	s := NewSubject(0)

	var got []int
	unsubscribe := s.Subscribe(func(v int) {
		got = append(got, v)
	})

	s.Emit(1)
	unsubscribe()
	s.Emit(2)

	if !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("expected delivery to stop after unsubscribe, got %v", got)
	}
}

func TestSubjectUnsubscribeIsIdempotent(t *testing.T) {
	s := NewSubject(0)

	unsubscribe := s.Subscribe(func(v int) {})
	unsubscribe()
	unsubscribe()

	// Other subscribers are unaffected
	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })
	s.Emit(7)

	if !reflect.DeepEqual(got, []int{0, 7}) {
		t.Fatalf("expected %v got %v", []int{0, 7}, got)
	}
}
