package ws

import (
	"github.com/syedhisham/live-courses-frontend/internal/model"
	"github.com/syedhisham/live-courses-frontend/internal/notify"
)

// toastPusher mirrors one user's toast store onto their sockets.
type toastPusher struct {
	hub    *Hub
	userID string
}

// ToastListenerFactory wires toast stores to the hub.
func ToastListenerFactory(hub *Hub) notify.ListenerFactory {
	return func(userID string) notify.Listener {
		return &toastPusher{hub: hub, userID: userID}
	}
}

func (p *toastPusher) ToastShown(toast model.Toast) {
	p.hub.SendToUser(p.userID, string(MsgToast), toast)
}

func (p *toastPusher) ToastDismissed(id string) {
	p.hub.SendToUser(p.userID, string(MsgToastDismissed), map[string]string{"id": id})
}
