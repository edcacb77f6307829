package provision

import (
	"context"
	"errors"
	"testing"
)

func TestSagaUnwindRunsInReverseOrder(t *testing.T) {
	var order []int
	sg := &saga{}
	sg.push(func(ctx context.Context) error { order = append(order, 1); return nil })
	sg.push(func(ctx context.Context) error { order = append(order, 2); return nil })

	if err := sg.unwind(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("expected reverse order [2 1], got %v", order)
	}
}

func TestSagaUnwindCollectsFailures(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	sg := &saga{}
	sg.push(func(ctx context.Context) error { ran = true; return nil })
	sg.push(func(ctx context.Context) error { return boom })

	err := sg.unwind(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom to be reported, got %v", err)
	}
	if !ran {
		t.Fatal("a failing compensation must not stop the unwind")
	}
}
