package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPollEvents_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	poll := func() tcell.Event { return tcell.NewEventInterrupt(nil) }

	events := pollEvents(ctx, poll)
	<-events
	cancel()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("poller still sending after cancel")
		}
	}
}

func TestPollEvents_ClosesOnNil(t *testing.T) {
	poll := func() tcell.Event { return nil }

	events := pollEvents(context.Background(), poll)
	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after poll returned nil")
	}
}
