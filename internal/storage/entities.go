package storage

import "time"

// Member roles
const (
	RoleAdmin    = "admin"
	RoleMember   = "member"
	RoleSender   = "sender"
	RoleReceiver = "receiver"
)

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Image     string     `json:"image"`
	Bio       string     `json:"bio"`
	Banner    string     `json:"banner"`
	Status    *string    `json:"status"`
	LastSeen  time.Time  `json:"lastSeen"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Profile is a public view of a user, extended with contact relation to the viewer
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Image     string    `json:"image"`
	Banner    string    `json:"banner"`
	Bio       string    `json:"bio"`
	Status    *string   `json:"status"`
	LastSeen  time.Time `json:"lastSeen"`
	IsContact bool      `json:"isContact"`
}

// ProfileUpdate holds optional fields, nil means unchanged
type ProfileUpdate struct {
	Name   *string
	Image  *string
	Banner *string
	Status *string
	Bio    *string
}

type Chat struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	InvitedCode string    `json:"invitedCode"`
	IsGroup     bool      `json:"isGroup"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Members     []Member  `json:"members,omitempty"`
}

// GroupUpdate holds optional fields, nil means unchanged
type GroupUpdate struct {
	Name        *string
	Description *string
	Image       *string
}

// MemberUser is the part of a user profile joined to each member
type MemberUser struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Image    string    `json:"image"`
	Banner   string    `json:"banner"`
	Status   *string   `json:"status"`
	LastSeen time.Time `json:"lastSeen"`
}

type Member struct {
	ID          string     `json:"id"`
	ChatID      string     `json:"chatId"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	HaveAccess  bool       `json:"haveAccess"`
	UnreadCount int        `json:"unreadCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	User        MemberUser `json:"user"`
}

// ChatRow is a chat as seen from one of its members, used for chat lists
type ChatRow struct {
	Chat
	UnreadCount     int
	LastMessage     *string
	LastMessageSent *time.Time
}

// Sender is the part of a user profile joined to each message
type Sender struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

type Media struct {
	ID        string    `json:"id"`
	MessageID string    `json:"messageId"`
	Value     string    `json:"value"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reply is one level of reply context; Deleted is set when the quoted message no longer exists
type Reply struct {
	ID        string     `json:"id"`
	Deleted   bool       `json:"deleted"`
	Content   *string    `json:"content,omitempty"`
	SenderID  string     `json:"senderId,omitempty"`
	Sender    *Sender    `json:"sender,omitempty"`
	Media     []Media    `json:"media,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	SenderID  string    `json:"senderId"`
	Content   *string   `json:"content"`
	ReplyToID *string   `json:"replyToId"`
	CreatedAt time.Time `json:"createdAt"`
	Sender    Sender    `json:"sender"`
	Media     []Media   `json:"media"`
	ReplyTo   *Reply    `json:"replyTo"`
}

// NewMessage is an input for message creation
type NewMessage struct {
	ChatID    string
	SenderID  string
	Content   *string
	ReplyToID *string
	Media     []string
}

// Cursor is an exclusive keyset position in a chat history ordered by creation time descending
type Cursor struct {
	CreatedAt time.Time
	ID        string
}
