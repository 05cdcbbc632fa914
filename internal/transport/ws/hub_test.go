package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhisham/live-courses-frontend/internal/model"
)

func newTestConn(hub *Hub, userID string) *Connection {
	return &Connection{
		UserID: userID,
		Send:   make(chan []byte, 8),
		Hub:    hub,
	}
}

func receive(t *testing.T, conn *Connection) Message {
	t.Helper()
	select {
	case data, ok := <-conn.Send:
		require.True(t, ok, "send channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return Message{}
	}
}

func TestSendToUserReachesAllTabs(t *testing.T) {
	hub := NewHub()

	tab1 := newTestConn(hub, "u1")
	tab2 := newTestConn(hub, "u1")
	other := newTestConn(hub, "u2")
	hub.Register(tab1)
	hub.Register(tab2)
	hub.Register(other)

	hub.SendToUser("u1", string(MsgUploadProgress), map[string]int{"progress": 40})

	for _, conn := range []*Connection{tab1, tab2} {
		msg := receive(t, conn)
		assert.Equal(t, MsgUploadProgress, msg.Type)

		var payload map[string]int
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, 40, payload["progress"])
	}

	select {
	case <-other.Send:
		t.Fatal("message leaked to another user")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	conn := newTestConn(hub, "u1")
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel never closed")
	}
}

func TestToastListenerPushesToHub(t *testing.T) {
	hub := NewHub()
	conn := newTestConn(hub, "u1")
	hub.Register(conn)

	listener := ToastListenerFactory(hub)("u1")

	toast := model.Toast{ID: "t1", Message: "saved", Severity: model.ToastSuccess}
	listener.ToastShown(toast)

	msg := receive(t, conn)
	assert.Equal(t, MsgToast, msg.Type)

	var got model.Toast
	require.NoError(t, json.Unmarshal(msg.Payload, &got))
	assert.Equal(t, toast.ID, got.ID)
	assert.Equal(t, "saved", got.Message)

	listener.ToastDismissed("t1")
	msg = receive(t, conn)
	assert.Equal(t, MsgToastDismissed, msg.Type)
}
