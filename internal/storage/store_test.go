package storage

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
	"log"
	mytesting "messenger/internal/testing"
	"os"
	"sync"
	"testing"
)

// testStore stays nil when docker is not available, storage tests are skipped then
var testStore *Store

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := runPostgres(ctx)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		os.Exit(m.Run())
	}

	code := func() int {
		defer func() {
			if err := container.Terminate(ctx); err != nil {
				log.Printf("failed to terminate container: %s", err)
			}
		}()

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Printf("failed to get connection string: %s", err)
			return 1
		}
		connCfg, err := pgx.ParseConfig(connStr)
		if err != nil {
			log.Printf("failed to parse connection string: %s", err)
			return 1
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Printf("failed to create logger: %s", err)
			return 1
		}

		cfg := Config{
			User:     connCfg.User,
			Password: connCfg.Password,
			Host:     connCfg.Host,
			Port:     connCfg.Port,
			DBName:   connCfg.Database,
			Migrate:  true,
		}
		testStore, err = New(ctx, logger.Sugar(), cfg, LogLevel(pgx.LogLevelWarn))
		if err != nil {
			log.Printf("failed to create store: %s", err)
			return 1
		}
		defer testStore.Close()

		return m.Run()
	}()

	os.Exit(code)
}

// runPostgres starts postgres container, docker lookup panics on hosts without docker
func runPostgres(ctx context.Context) (c *postgres.PostgresContainer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker is not available: %v", r)
		}
	}()

	return postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("messenger"),
		postgres.WithUsername("messenger"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
}

func requireStore(t *testing.T) *Store {
	t.Helper()
	if testStore == nil {
		t.Skip("postgres container is not available")
	}
	return testStore
}

func createUser(t *testing.T, s *Store) User {
	t.Helper()
	username := mytesting.RandUsername()
	u, err := s.CreateUser(context.Background(), User{Name: username, Email: username + "@example.com", Username: username})
	require.NoError(t, err)
	return u
}

func createUsers(t *testing.T, s *Store, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, createUser(t, s).ID)
	}
	return ids
}

func text(s string) *string {
	return &s
}

func TestCreateUser(t *testing.T) {
	s := requireStore(t)

	u := createUser(t, s)
	require.NotEmpty(t, u.ID)

	got, err := s.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, got.Username)
}

func TestCreateUserExists(t *testing.T) {
	s := requireStore(t)

	u := createUser(t, s)
	_, err := s.CreateUser(context.Background(), User{Name: "dup", Email: "dup@example.com", Username: u.Username})
	require.Equal(t, ErrUserExists, err)
}

func TestUserByID_NotExist(t *testing.T) {
	s := requireStore(t)

	_, err := s.UserByID(context.Background(), "missing")
	require.Equal(t, ErrUserNotExist, err)
}

func TestProfileIsContact(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)
	viewer, target := ids[0], ids[1]

	p, err := s.Profile(ctx, viewer, target)
	require.NoError(t, err)
	require.False(t, p.IsContact)

	require.NoError(t, s.AddContact(ctx, target, viewer))
	require.NoError(t, s.AddContact(ctx, target, viewer))

	p, err = s.Profile(ctx, viewer, target)
	require.NoError(t, err)
	require.True(t, p.IsContact)
}

func TestAddContact_UserNotExist(t *testing.T) {
	s := requireStore(t)

	u := createUser(t, s)
	require.Equal(t, ErrUserNotExist, s.AddContact(context.Background(), u.ID, "missing"))
}

func TestUpdateProfile(t *testing.T) {
	s := requireStore(t)

	u := createUser(t, s)
	updated, err := s.UpdateProfile(context.Background(), u.ID, ProfileUpdate{Bio: text("hello"), Status: text("busy")})
	require.NoError(t, err)
	require.Equal(t, "hello", updated.Bio)
	require.Equal(t, "busy", *updated.Status)
	require.Equal(t, u.Name, updated.Name)
}

func TestCreateGroupChat(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	u := createUser(t, s)

	chat, err := s.CreateGroupChat(ctx, u.ID, u.Name, "group", "")
	require.NoError(t, err)
	require.True(t, chat.IsGroup)
	require.NotEmpty(t, chat.InvitedCode)

	got, err := s.ChatByInviteCode(ctx, chat.InvitedCode)
	require.NoError(t, err)
	require.Equal(t, chat.ID, got.ID)
	require.Len(t, got.Members, 1)
	require.Equal(t, RoleAdmin, got.Members[0].Role)
	require.True(t, got.Members[0].HaveAccess)
	require.Equal(t, u.Username, got.Members[0].User.Username)
}

func TestCreateGroupChat_UserNotExist(t *testing.T) {
	s := requireStore(t)

	_, err := s.CreateGroupChat(context.Background(), "missing", "", "group", "")
	require.Equal(t, ErrUserNotExist, err)
}

func TestAddMember_Idempotent(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chat, err := s.CreateGroupChat(ctx, ids[0], "", "group", "")
	require.NoError(t, err)

	require.NoError(t, s.AddMember(ctx, chat.ID, ids[1], ""))
	require.NoError(t, s.AddMember(ctx, chat.ID, ids[1], ""))

	got, err := s.ChatByID(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 2)
}

func TestAddMember_ChatNotExist(t *testing.T) {
	s := requireStore(t)

	u := createUser(t, s)
	require.Equal(t, ErrChatNotExist, s.AddMember(context.Background(), "missing", u.ID, ""))
}

func TestRemoveMember_LastMemberDeletesChat(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chat, err := s.CreateGroupChat(ctx, ids[0], "", "group", "")
	require.NoError(t, err)
	require.NoError(t, s.AddMember(ctx, chat.ID, ids[1], ""))

	deleted, err := s.RemoveMember(ctx, chat.ID, ids[0])
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = s.RemoveMember(ctx, chat.ID, ids[0])
	require.Equal(t, ErrMemberNotExist, err)

	deleted, err = s.RemoveMember(ctx, chat.ID, ids[1])
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = s.ChatByID(ctx, chat.ID)
	require.Equal(t, ErrChatNotExist, err)
}

func TestRemoveMember_Concurrent(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		ids := createUsers(t, s, 2)
		chat, err := s.CreateGroupChat(ctx, ids[0], "", "group", "")
		require.NoError(t, err)
		require.NoError(t, s.AddMember(ctx, chat.ID, ids[1], ""))

		var (
			wg      sync.WaitGroup
			deleted = make([]bool, 2)
			errs    = make([]error, 2)
		)
		for j, id := range ids {
			wg.Add(1)
			go func(j int, id string) {
				defer wg.Done()
				deleted[j], errs[j] = s.RemoveMember(ctx, chat.ID, id)
			}(j, id)
		}
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		require.True(t, deleted[0] != deleted[1])

		_, err = s.ChatByID(ctx, chat.ID)
		require.Equal(t, ErrChatNotExist, err)
	}
}

func TestRemoveMember_ChatNotExist(t *testing.T) {
	s := requireStore(t)

	u := createUser(t, s)
	_, err := s.RemoveMember(context.Background(), "missing", u.ID)
	require.Equal(t, ErrChatNotExist, err)
}

func TestCreateDirectChat(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chatID, msg, err := s.CreateDirectChat(ctx, ids[0], ids[1], "hi")
	require.NoError(t, err)
	require.Equal(t, chatID, msg.ChatID)
	require.Equal(t, "hi", *msg.Content)

	found, err := s.FindDirectChat(ctx, ids[1], ids[0])
	require.NoError(t, err)
	require.Equal(t, chatID, found)

	receiver, err := s.Member(ctx, chatID, ids[1])
	require.NoError(t, err)
	require.Equal(t, RoleReceiver, receiver.Role)
	require.Equal(t, 1, receiver.UnreadCount)

	sender, err := s.Member(ctx, chatID, ids[0])
	require.NoError(t, err)
	require.Equal(t, RoleSender, sender.Role)
	require.Equal(t, 0, sender.UnreadCount)

	_, _, err = s.CreateDirectChat(ctx, ids[1], ids[0], "again")
	require.Equal(t, ErrDirectChatExists, err)
}

func TestCreateDirectChat_Concurrent(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()

	for _, pair := range mytesting.PairUserIDs(createUsers(t, s, 4)) {
		var (
			wg   sync.WaitGroup
			errs = make([]error, 2)
		)
		for i, p := range [][2]string{pair, {pair[1], pair[0]}} {
			wg.Add(1)
			go func(i int, p [2]string) {
				defer wg.Done()
				_, _, errs[i] = s.CreateDirectChat(ctx, p[0], p[1], "hi")
			}(i, p)
		}
		wg.Wait()

		var created int
		for _, err := range errs {
			if err == nil {
				created++
				continue
			}
			require.Equal(t, ErrDirectChatExists, err)
		}
		require.Equal(t, 1, created)
	}
}

func TestFindDirectChat_IgnoresGroups(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chat, err := s.CreateGroupChat(ctx, ids[0], "", "group", "")
	require.NoError(t, err)
	require.NoError(t, s.AddMember(ctx, chat.ID, ids[1], ""))

	_, err = s.FindDirectChat(ctx, ids[0], ids[1])
	require.Equal(t, ErrChatNotExist, err)
}

func TestIncrementUnread(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 3)

	chat, err := s.CreateGroupChat(ctx, ids[0], "", "group", "")
	require.NoError(t, err)
	for _, id := range ids[1:] {
		require.NoError(t, s.AddMember(ctx, chat.ID, id, ""))
	}

	require.NoError(t, s.IncrementUnread(ctx, chat.ID, ids[1]))
	require.NoError(t, s.IncrementUnread(ctx, chat.ID, ids[1]))

	for id, want := range map[string]int{ids[0]: 2, ids[1]: 0, ids[2]: 2} {
		m, err := s.Member(ctx, chat.ID, id)
		require.NoError(t, err)
		require.Equal(t, want, m.UnreadCount)
	}
}

func TestSendMessage_UnreadAndMarkRead(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 3)

	chat, err := s.CreateGroupChat(ctx, ids[0], "", "group", "")
	require.NoError(t, err)
	for _, id := range ids[1:] {
		require.NoError(t, s.AddMember(ctx, chat.ID, id, ""))
	}

	msg, err := s.SendMessage(ctx, NewMessage{ChatID: chat.ID, SenderID: ids[0], Content: text("hello"), Media: []string{"a.png", "b.png"}})
	require.NoError(t, err)
	require.Len(t, msg.Media, 2)
	require.Equal(t, ids[0], msg.Sender.ID)

	for _, id := range ids[1:] {
		m, err := s.Member(ctx, chat.ID, id)
		require.NoError(t, err)
		require.Equal(t, 1, m.UnreadCount)
	}
	sender, err := s.Member(ctx, chat.ID, ids[0])
	require.NoError(t, err)
	require.Equal(t, 0, sender.UnreadCount)

	require.NoError(t, s.MarkRead(ctx, chat.ID, ids[1]))
	m, err := s.Member(ctx, chat.ID, ids[1])
	require.NoError(t, err)
	require.Equal(t, 0, m.UnreadCount)
}

func TestSendMessage_NotMember(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chat, err := s.CreateGroupChat(ctx, ids[0], "", "group", "")
	require.NoError(t, err)

	_, err = s.SendMessage(ctx, NewMessage{ChatID: chat.ID, SenderID: ids[1], Content: text("hello")})
	require.Equal(t, ErrUserNotChatMember, err)
}

func TestSendMessage_Reply(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chatID, first, err := s.CreateDirectChat(ctx, ids[0], ids[1], "question")
	require.NoError(t, err)

	reply, err := s.SendMessage(ctx, NewMessage{ChatID: chatID, SenderID: ids[1], Content: text("answer"), ReplyToID: &first.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ReplyTo)
	require.False(t, reply.ReplyTo.Deleted)
	require.Equal(t, "question", *reply.ReplyTo.Content)
	require.Equal(t, ids[0], reply.ReplyTo.SenderID)

	require.NoError(t, s.DeleteMessage(ctx, ids[0], chatID, first.ID))

	messages, err := s.MessagesByChatID(ctx, chatID, ids[1], nil, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, reply.ID, messages[0].ID)
	require.True(t, messages[0].ReplyTo.Deleted)
	require.Equal(t, first.ID, messages[0].ReplyTo.ID)
}

func TestSendMessage_ReplyFromOtherChat(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 3)

	_, foreign, err := s.CreateDirectChat(ctx, ids[0], ids[1], "first")
	require.NoError(t, err)
	chatID, _, err := s.CreateDirectChat(ctx, ids[0], ids[2], "second")
	require.NoError(t, err)

	_, err = s.SendMessage(ctx, NewMessage{ChatID: chatID, SenderID: ids[0], Content: text("x"), ReplyToID: &foreign.ID})
	require.Equal(t, ErrReplyNotInChat, err)
}

func TestDeleteMessage_NotOwner(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chatID, msg, err := s.CreateDirectChat(ctx, ids[0], ids[1], "mine")
	require.NoError(t, err)

	require.Equal(t, ErrMessageNotExist, s.DeleteMessage(ctx, ids[1], chatID, msg.ID))
	require.NoError(t, s.DeleteMessage(ctx, ids[0], chatID, msg.ID))
	require.Equal(t, ErrMessageNotExist, s.DeleteMessage(ctx, ids[0], chatID, msg.ID))
}

func TestMessagesByChatID_Pagination(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chatID, first, err := s.CreateDirectChat(ctx, ids[0], ids[1], "0")
	require.NoError(t, err)
	sent := []string{first.ID}
	for i := 1; i < 25; i++ {
		msg, err := s.SendMessage(ctx, NewMessage{ChatID: chatID, SenderID: ids[i%2], Content: text(mytesting.RandString(5))})
		require.NoError(t, err)
		sent = append(sent, msg.ID)
	}

	var (
		before *Cursor
		sizes  []int
		listed []string
		seen   = make(map[string]struct{})
		prev   *Message
	)
	for {
		page, err := s.MessagesByChatID(ctx, chatID, ids[0], before, 10)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		sizes = append(sizes, len(page))
		for i := range page {
			m := page[i]
			_, dup := seen[m.ID]
			require.False(t, dup)
			seen[m.ID] = struct{}{}
			listed = append(listed, m.ID)
			if prev != nil {
				require.False(t, m.CreatedAt.After(prev.CreatedAt))
			}
			prev = &m
		}
		last := page[len(page)-1]
		before = &Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	require.Equal(t, []int{10, 10, 5}, sizes)
	require.Equal(t, mytesting.ReverseIDs(sent), listed)
	require.Len(t, seen, 25)
}

func TestSearchMessages(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chatID, _, err := s.CreateDirectChat(ctx, ids[0], ids[1], "Hello World")
	require.NoError(t, err)
	_, err = s.SendMessage(ctx, NewMessage{ChatID: chatID, SenderID: ids[1], Content: text("100% done")})
	require.NoError(t, err)

	found, err := s.SearchMessages(ctx, chatID, ids[0], "world")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Hello World", *found[0].Content)

	found, err = s.SearchMessages(ctx, chatID, ids[0], "%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "100% done", *found[0].Content)
}

func TestRemoveChat_ReadFloor(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 2)

	chatID, _, err := s.CreateDirectChat(ctx, ids[0], ids[1], "old")
	require.NoError(t, err)

	floor, err := s.ReadFloor(ctx, ids[0], chatID)
	require.NoError(t, err)
	require.Nil(t, floor)

	require.NoError(t, s.RemoveChat(ctx, ids[0], chatID))
	first, err := s.ReadFloor(ctx, ids[0], chatID)
	require.NoError(t, err)
	require.NotNil(t, first)

	require.NoError(t, s.RemoveChat(ctx, ids[0], chatID))
	second, err := s.ReadFloor(ctx, ids[0], chatID)
	require.NoError(t, err)
	require.False(t, second.Before(*first))

	chats, err := s.ChatsByUserID(ctx, ids[0])
	require.NoError(t, err)
	require.Empty(t, chats)

	others, err := s.ChatsByUserID(ctx, ids[1])
	require.NoError(t, err)
	require.Len(t, others, 1)
	require.Equal(t, chatID, others[0].ID)

	messages, err := s.MessagesByChatID(ctx, chatID, ids[0], nil, 10)
	require.NoError(t, err)
	require.Empty(t, messages)

	// the other participant still sees the whole history
	messages, err = s.MessagesByChatID(ctx, chatID, ids[1], nil, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	_, err = s.ContinueDirectChat(ctx, chatID, ids[1], ids[0], "new")
	require.NoError(t, err)

	chats, err = s.ChatsByUserID(ctx, ids[0])
	require.NoError(t, err)
	require.Len(t, chats, 1)
	require.Equal(t, "new", *chats[0].LastMessage)
	require.Equal(t, 1, chats[0].UnreadCount)

	messages, err = s.MessagesByChatID(ctx, chatID, ids[0], nil, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "new", *messages[0].Content)
}

func TestRemoveChat_ChatNotExist(t *testing.T) {
	s := requireStore(t)

	u := createUser(t, s)
	require.Equal(t, ErrChatNotExist, s.RemoveChat(context.Background(), u.ID, "missing"))
}

func TestChatsByUserID_Order(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	ids := createUsers(t, s, 3)

	first, _, err := s.CreateDirectChat(ctx, ids[0], ids[1], "a")
	require.NoError(t, err)
	second, _, err := s.CreateDirectChat(ctx, ids[0], ids[2], "b")
	require.NoError(t, err)

	chats, err := s.ChatsByUserID(ctx, ids[0])
	require.NoError(t, err)
	require.Len(t, chats, 2)
	require.Equal(t, second, chats[0].ID)

	_, err = s.SendMessage(ctx, NewMessage{ChatID: first, SenderID: ids[1], Content: text("c")})
	require.NoError(t, err)

	chats, err = s.ChatsByUserID(ctx, ids[0])
	require.NoError(t, err)
	require.Equal(t, first, chats[0].ID)
	require.Equal(t, "c", *chats[0].LastMessage)
	require.Len(t, chats[0].Members, 2)
}

func TestUpdateGroup(t *testing.T) {
	s := requireStore(t)
	ctx := context.Background()
	u := createUser(t, s)

	chat, err := s.CreateGroupChat(ctx, u.ID, "", "before", "")
	require.NoError(t, err)

	updated, err := s.UpdateGroup(ctx, chat.ID, GroupUpdate{Name: text("after")})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Name)
	require.Equal(t, chat.InvitedCode, updated.InvitedCode)

	_, err = s.UpdateGroup(ctx, "missing", GroupUpdate{Name: text("x")})
	require.Equal(t, ErrChatNotExist, err)
}
