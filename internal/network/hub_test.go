package network

import (
	"os"
	"testing"

	"realm-server/pkg/api"
	"realm-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_SendAndBroadcast(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("s1")
	c := b.Register("s2")

	if b.SubscriberCount() != 2 || !b.HasSubscriber("s1") {
		t.Fatal("Registration not tracked")
	}

	if !b.SendTo("s1", api.ServerMessage{Type: api.MsgLog, Message: "hi"}) {
		t.Fatal("SendTo failed")
	}
	if msg := <-a; msg.Message != "hi" {
		t.Errorf("Unexpected message %+v", msg)
	}
	if len(c) != 0 {
		t.Error("Unicast leaked to another session")
	}

	b.Broadcast(api.ServerMessage{Type: api.MsgCombatLog})
	if len(a) != 1 || len(c) != 1 {
		t.Error("Broadcast must reach every subscriber")
	}

	if b.SendTo("missing", api.ServerMessage{}) {
		t.Error("SendTo to an unknown session must report false")
	}
}

func TestBroadcaster_Unregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("s1")
	b.Unregister("s1")

	if _, ok := <-ch; ok {
		t.Error("Channel must be closed on unregister")
	}
	if b.HasSubscriber("s1") || b.SubscriberCount() != 0 {
		t.Error("Subscriber must be removed")
	}
	b.Unregister("s1")
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("s1")
	fresh := b.Register("s1")

	if _, ok := <-old; ok {
		t.Error("Previous channel must be closed")
	}
	b.SendTo("s1", api.ServerMessage{Type: api.MsgLog})
	if len(fresh) != 1 {
		t.Error("Messages must go to the new channel")
	}
}

func TestBroadcaster_FullChannelDrops(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")
	for i := 0; i < SubscriberBuffer; i++ {
		if !b.SendTo("slow", api.ServerMessage{Type: api.MsgLog}) {
			t.Fatalf("Send %d failed before the buffer was full", i)
		}
	}
	if b.SendTo("slow", api.ServerMessage{Type: api.MsgLog}) {
		t.Error("Send to a full channel must not block and must report false")
	}
	if len(ch) != SubscriberBuffer {
		t.Errorf("Buffered %d messages", len(ch))
	}
}
