package realtime

import (
	"encoding/json"
)

// Event names of the socket protocol
const (
	EventChatMessage    = "chat message"
	EventJoinGroup      = "join group"
	EventLeaveGroup     = "leave group"
	EventSendMessage    = "sendMessage"
	EventRemoveMessage  = "remove-message"
	EventSendDM         = "sendDm"
	EventRead           = "read"
	EventGetOnlineUsers = "getOnlineUsers"
	EventError          = "error"
)

type inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outbound struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type roomEvent struct {
	ChatID string `json:"chatId" validate:"required"`
}

type sendMessageEvent struct {
	ChatID    string   `json:"chatId" validate:"required"`
	Content   *string  `json:"content" validate:"omitempty,max=4096"`
	ReplyToID *string  `json:"replyToId"`
	Media     []string `json:"media" validate:"max=10,dive,required,max=255"`
}

type removeMessageEvent struct {
	ChatID    string `json:"chatId" validate:"required"`
	MessageID string `json:"messageId" validate:"required"`
}

type sendDMEvent struct {
	OtherUserID string `json:"otherUserId" validate:"required"`
	Content     string `json:"content" validate:"required,max=4096"`
}

type errorEvent struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

// Frame encodes outbound event
func Frame(event string, data interface{}) ([]byte, error) {
	return json.Marshal(outbound{Event: event, Data: data})
}
