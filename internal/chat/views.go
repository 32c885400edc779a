package chat

import (
	"messenger/internal/storage"
	"time"
)

const (
	unknownGroup = "Unknown Group"
	unknownUser  = "Unknown User"
)

// Chatlist is a chat list entry as seen by one user
type Chatlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	LastMessage string    `json:"lastMessage"`
	UnreadCount int       `json:"unreadCount"`
	LastSent    time.Time `json:"lastSent"`
	IsGroup     bool      `json:"isGroup"`
	UserID      string    `json:"userId,omitempty"`
}

// ChatDetail is a chat with its members as seen by one user
type ChatDetail struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Image       string           `json:"image"`
	Description string           `json:"description"`
	InvitedCode string           `json:"invitedCode,omitempty"`
	IsGroup     bool             `json:"isGroup"`
	CreatedAt   time.Time        `json:"createdAt"`
	Members     []storage.Member `json:"members"`
	LastOnline  *time.Time       `json:"lastOnline,omitempty"`
	OtherUserID string           `json:"otherUserId,omitempty"`
}

type MessagesPage struct {
	Messages   []storage.Message `json:"messages"`
	NextCursor *string           `json:"nextCursor"`
}

type DeletedMessage struct {
	ChatID    string `json:"chatId"`
	MessageID string `json:"messageId"`
}

// DirectResult is the outcome of a direct message. Chatlist is built for the sender,
// Peer for the receiver.
type DirectResult struct {
	Chatlist Chatlist        `json:"chatlist"`
	Message  storage.Message `json:"message"`

	Peer        Chatlist `json:"-"`
	OtherUserID string   `json:"-"`
}

func otherMember(members []storage.Member, userID string) *storage.Member {
	for i := range members {
		if members[i].UserID != userID {
			return &members[i]
		}
	}
	return nil
}

// displayName resolves name and image of chat for the viewer
func displayName(c storage.Chat, viewerID string) (name, image string) {
	if c.IsGroup {
		name = c.Name
		if name == "" {
			name = unknownGroup
		}
		return name, c.Image
	}

	name = unknownUser
	if other := otherMember(c.Members, viewerID); other != nil {
		if other.User.Name != "" {
			name = other.User.Name
		}
		image = other.User.Image
	}
	return name, image
}

func newChatlist(row storage.ChatRow, viewerID string) Chatlist {
	name, image := displayName(row.Chat, viewerID)

	cl := Chatlist{
		ID:          row.ID,
		Name:        name,
		Image:       image,
		UnreadCount: row.UnreadCount,
		LastSent:    row.CreatedAt,
		IsGroup:     row.IsGroup,
	}
	if row.LastMessage != nil {
		cl.LastMessage = *row.LastMessage
	}
	if row.LastMessageSent != nil {
		cl.LastSent = *row.LastMessageSent
	}
	if !row.IsGroup {
		if other := otherMember(row.Members, viewerID); other != nil {
			cl.UserID = other.UserID
		}
	}
	return cl
}

func newChatDetail(c storage.Chat, viewerID string) ChatDetail {
	name, image := displayName(c, viewerID)

	d := ChatDetail{
		ID:          c.ID,
		Name:        name,
		Image:       image,
		Description: c.Description,
		IsGroup:     c.IsGroup,
		CreatedAt:   c.CreatedAt,
		Members:     c.Members,
	}
	if d.Members == nil {
		d.Members = []storage.Member{}
	}

	if c.IsGroup {
		d.InvitedCode = c.InvitedCode
		return d
	}

	if other := otherMember(c.Members, viewerID); other != nil {
		lastSeen := other.User.LastSeen
		d.LastOnline = &lastSeen
		d.OtherUserID = other.UserID
	}
	return d
}
