package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressHubDeliversToOwnUserOnly(t *testing.T) {
	chA, unsubA := SubscribeProgress("user-a")
	defer unsubA()
	chB, unsubB := SubscribeProgress("user-b")
	defer unsubB()

	fanOutMoodLogEvent(MoodLogEvent{Type: EventMoodLogUpdated, UserID: "user-a", Date: "2025-01-15"})

	select {
	case evt := <-chA:
		assert.Equal(t, "user-a", evt.UserID)
		assert.Equal(t, "2025-01-15", evt.Date)
	case <-time.After(time.Second):
		t.Fatal("subscriber for user-a received nothing")
	}

	select {
	case evt := <-chB:
		t.Fatalf("subscriber for user-b received %+v", evt)
	default:
	}
}

func TestProgressHubFansOutToAllConnectionsOfAUser(t *testing.T) {
	ch1, unsub1 := SubscribeProgress("user-c")
	defer unsub1()
	ch2, unsub2 := SubscribeProgress("user-c")
	defer unsub2()

	fanOutMoodLogEvent(MoodLogEvent{Type: EventMoodLogUpdated, UserID: "user-c"})

	for i, ch := range []<-chan MoodLogEvent{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("connection %d received nothing", i+1)
		}
	}
}

func TestProgressHubUnsubscribeClosesChannel(t *testing.T) {
	ch, unsub := SubscribeProgress("user-d")
	unsub()

	_, open := <-ch
	assert.False(t, open, "unsubscribe must close the event channel")

	// Publishing after unsubscribe must not panic or block.
	fanOutMoodLogEvent(MoodLogEvent{Type: EventMoodLogUpdated, UserID: "user-d"})
}

func TestProgressHubSlowConsumerNeverBlocks(t *testing.T) {
	_, unsub := SubscribeProgress("user-e")
	defer unsub()

	done := make(chan struct{})
	go func() {
		// More events than the channel buffer; extra ones are dropped, and the
		// fan-out must return regardless.
		for i := 0; i < 50; i++ {
			fanOutMoodLogEvent(MoodLogEvent{Type: EventMoodLogUpdated, UserID: "user-e"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fan-out blocked on a slow consumer")
	}
}

func TestSubscribeProgressIsolatesUnsubscribedSiblings(t *testing.T) {
	ch1, unsub1 := SubscribeProgress("user-f")
	_, unsub2 := SubscribeProgress("user-f")
	unsub2()

	fanOutMoodLogEvent(MoodLogEvent{Type: EventMoodLogUpdated, UserID: "user-f"})

	select {
	case evt := <-ch1:
		require.Equal(t, "user-f", evt.UserID)
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber received nothing")
	}
	unsub1()
}
