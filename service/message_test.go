package service

import "testing"

func TestConversationID_OrderIndependent(t *testing.T) {
	a := ConversationID(5, 9)
	b := ConversationID(9, 5)
	if a != b {
		t.Fatalf("conversation id must not depend on direction: %s vs %s", a, b)
	}
	if a != "5_9" {
		t.Fatalf("expected 5_9, got %s", a)
	}
}

func TestConversationID_Deterministic(t *testing.T) {
	pairs := [][2]uint64{
		{1, 2},
		{2, 1},
		{100, 3},
		{7, 70000},
	}
	for _, p := range pairs {
		first := ConversationID(p[0], p[1])
		for i := 0; i < 10; i++ {
			if got := ConversationID(p[0], p[1]); got != first {
				t.Fatalf("conversation id not deterministic for %v: %s vs %s", p, first, got)
			}
		}
	}
}
