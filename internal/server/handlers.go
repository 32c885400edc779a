package server

import (
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"
	"io"
	"messenger/internal/chat"
	"messenger/internal/identity"
	"messenger/internal/storage"
	"messenger/internal/storage/zapadapter"
	"net/http"
)

type handler struct {
	logger  *zap.SugaredLogger
	svc     Service
	rt      Realtime
	parsers fastjson.ParserPool
}

// routes returns handlers keyed by ServeMux patterns, body carrying routes are wrapped with enforceJSON
func (h *handler) routes() map[string]http.Handler {
	return map[string]http.Handler{
		"GET /chats":                      http.HandlerFunc(h.listChats),
		"GET /chats/{id}":                 http.HandlerFunc(h.chatDetail),
		"GET /chats/{id}/messages":        http.HandlerFunc(h.listMessages),
		"GET /chats/{id}/messages/search": http.HandlerFunc(h.searchMessages),
		"POST /chats/{id}/read":           http.HandlerFunc(h.markRead),
		"DELETE /chats/{id}":              http.HandlerFunc(h.removeChat),
		"POST /messages":                  enforceJSON(http.HandlerFunc(h.sendMessage)),
		"DELETE /messages":                enforceJSON(http.HandlerFunc(h.deleteMessage)),
		"POST /groups":                    enforceJSON(http.HandlerFunc(h.createGroup)),
		"GET /groups/code/{code}":         http.HandlerFunc(h.chatByInviteCode),
		"PATCH /groups/{id}":              enforceJSON(http.HandlerFunc(h.updateGroup)),
		"DELETE /groups/out":              enforceJSON(http.HandlerFunc(h.leaveGroup)),
		"POST /members/add":               enforceJSON(http.HandlerFunc(h.addMember)),
		"POST /dm":                        enforceJSON(http.HandlerFunc(h.createDirect)),
		"GET /users/{id}":                 http.HandlerFunc(h.profile),
		"PATCH /users/me":                 enforceJSON(http.HandlerFunc(h.updateProfile)),
		"POST /contacts":                  enforceJSON(http.HandlerFunc(h.addContact)),
	}
}

// session returns identity put into context by authenticate middleware
func session(r *http.Request) identity.Session {
	s, _ := identity.FromContext(r.Context())
	return s
}

// listChats handles HTTP requests on "GET /chats" endpoint
func (h *handler) listChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.svc.ListChats(r.Context(), session(r).ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chats)
}

// chatDetail handles HTTP requests on "GET /chats/{id}" endpoint
func (h *handler) chatDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.ChatDetail(r.Context(), r.PathValue("id"), session(r).ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

// listMessages handles HTTP requests on "GET /chats/{id}/messages" endpoint
func (h *handler) listMessages(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListMessages(r.Context(), r.PathValue("id"), session(r).ID, r.URL.Query().Get("cursor"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

// searchMessages handles HTTP requests on "GET /chats/{id}/messages/search" endpoint
func (h *handler) searchMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.SearchMessages(r.Context(), r.PathValue("id"), session(r).ID, r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, messages)
}

// markRead handles HTTP requests on "POST /chats/{id}/read" endpoint
func (h *handler) markRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkRead(r.Context(), r.PathValue("id"), session(r).ID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// removeChat handles HTTP requests on "DELETE /chats/{id}" endpoint
func (h *handler) removeChat(w http.ResponseWriter, r *http.Request) {
	chatID, err := h.svc.RemoveChat(r.Context(), session(r).ID, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chatIDResponse{ChatID: chatID})
}

// sendMessage handles HTTP requests on "POST /messages" endpoint
func (h *handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	nm := storage.NewMessage{SenderID: session(r).ID}
	err := h.parse(r, func(v *fastjson.Value) (err error) {
		if nm.ChatID, err = stringField(v, "chatId"); err != nil {
			return err
		}
		if nm.Content, err = optionalString(v, "content"); err != nil {
			return err
		}
		if nm.ReplyToID, err = optionalString(v, "replyToId"); err != nil {
			return err
		}
		nm.Media, err = stringArray(v, "media")
		return err
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.svc.SendMessage(r.Context(), nm)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.rt.PublishMessage(msg); err != nil {
		h.logger.Errorf("publishing message (id: %s): %v", msg.ID, err)
	}
	h.writeJSON(w, http.StatusCreated, msg)
}

// deleteMessage handles HTTP requests on "DELETE /messages" endpoint
func (h *handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	var chatID, messageID string
	err := h.parse(r, func(v *fastjson.Value) (err error) {
		if chatID, err = stringField(v, "chatId"); err != nil {
			return err
		}
		messageID, err = stringField(v, "messageId")
		return err
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := h.svc.DeleteMessage(r.Context(), session(r).ID, chatID, messageID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.rt.PublishRemoval(deleted); err != nil {
		h.logger.Errorf("publishing removal of message (id: %s): %v", messageID, err)
	}
	h.writeJSON(w, http.StatusOK, deleted)
}

// createGroup handles HTTP requests on "POST /groups" endpoint
func (h *handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var name string
	var image *string
	err := h.parse(r, func(v *fastjson.Value) (err error) {
		if name, err = stringField(v, "name"); err != nil {
			return err
		}
		image, err = optionalString(v, "image")
		return err
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := session(r)
	created, err := h.svc.CreateGroupChat(r.Context(), s.ID, s.Name, name, deref(image))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// chatByInviteCode handles HTTP requests on "GET /groups/code/{code}" endpoint
func (h *handler) chatByInviteCode(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.ChatByInviteCode(r.Context(), r.PathValue("code"), session(r).ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

// updateGroup handles HTTP requests on "PATCH /groups/{id}" endpoint
func (h *handler) updateGroup(w http.ResponseWriter, r *http.Request) {
	var upd storage.GroupUpdate
	err := h.parse(r, func(v *fastjson.Value) (err error) {
		if upd.Name, err = optionalString(v, "name"); err != nil {
			return err
		}
		if upd.Description, err = optionalString(v, "description"); err != nil {
			return err
		}
		upd.Image, err = optionalString(v, "image")
		return err
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detail, err := h.svc.UpdateGroup(r.Context(), r.PathValue("id"), session(r).ID, upd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

// leaveGroup handles HTTP requests on "DELETE /groups/out" endpoint
func (h *handler) leaveGroup(w http.ResponseWriter, r *http.Request) {
	chatID, err := h.chatIDBody(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := session(r).ID
	left, err := h.svc.LeaveGroup(r.Context(), chatID, userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.rt.LeaveRoom(userID, left)
	h.writeJSON(w, http.StatusOK, chatIDResponse{ChatID: left})
}

// addMember handles HTTP requests on "POST /members/add" endpoint
func (h *handler) addMember(w http.ResponseWriter, r *http.Request) {
	chatID, err := h.chatIDBody(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := session(r)
	joined, err := h.svc.AddMember(r.Context(), chatID, s.ID, s.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chatIDResponse{ChatID: joined})
}

// createDirect handles HTTP requests on "POST /dm" endpoint
func (h *handler) createDirect(w http.ResponseWriter, r *http.Request) {
	var otherUserID, content string
	err := h.parse(r, func(v *fastjson.Value) (err error) {
		if otherUserID, err = stringField(v, "otherUserId"); err != nil {
			return err
		}
		content, err = stringField(v, "content")
		return err
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	senderID := session(r).ID
	res, err := h.svc.CreateDirectChat(r.Context(), senderID, otherUserID, content)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.rt.PublishDirect(senderID, res); err != nil {
		h.logger.Errorf("publishing direct message (id: %s): %v", res.Message.ID, err)
	}
	h.writeJSON(w, http.StatusCreated, res)
}

// profile handles HTTP requests on "GET /users/{id}" endpoint, "me" stands for the caller
func (h *handler) profile(w http.ResponseWriter, r *http.Request) {
	viewerID := session(r).ID
	targetID := r.PathValue("id")
	if targetID == "me" {
		targetID = viewerID
	}

	p, err := h.svc.Profile(r.Context(), viewerID, targetID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// updateProfile handles HTTP requests on "PATCH /users/me" endpoint
func (h *handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var upd storage.ProfileUpdate
	err := h.parse(r, func(v *fastjson.Value) (err error) {
		for name, field := range map[string]**string{
			"name":   &upd.Name,
			"image":  &upd.Image,
			"banner": &upd.Banner,
			"status": &upd.Status,
			"bio":    &upd.Bio,
		} {
			if *field, err = optionalString(v, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), session(r).ID, upd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

// addContact handles HTTP requests on "POST /contacts" endpoint
func (h *handler) addContact(w http.ResponseWriter, r *http.Request) {
	var friendID string
	err := h.parse(r, func(v *fastjson.Value) (err error) {
		friendID, err = stringField(v, "userId")
		return err
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AddContact(r.Context(), session(r).ID, friendID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// serveWS handles websocket upgrade on "GET /ws" endpoint
func (h *handler) serveWS(w http.ResponseWriter, r *http.Request) {
	h.rt.ServeWS(w, r, session(r))
}

type chatIDResponse struct {
	ChatID string `json:"chatId"`
}

func (h *handler) chatIDBody(r *http.Request) (string, error) {
	var chatID string
	err := h.parse(r, func(v *fastjson.Value) (err error) {
		chatID, err = stringField(v, "chatId")
		return err
	})
	return chatID, err
}

// parse reads JSON object from request body and passes it to decode,
// values must be copied out inside decode since the parser is reused afterwards
func (h *handler) parse(r *http.Request, decode func(v *fastjson.Value) error) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.New("Can not read request body")
	}

	parser := h.parsers.Get()
	defer h.parsers.Put(parser)

	v, err := parser.ParseBytes(body)
	if err != nil {
		return errors.New("Malformed JSON")
	}
	if v.Type() != fastjson.TypeObject {
		return errors.New("Body must be a JSON object")
	}
	return decode(v)
}

// stringField returns required non-empty string field of v
func stringField(v *fastjson.Value, name string) (string, error) {
	if !v.Exists(name) {
		return "", errors.Errorf("Missing Field %q", name)
	}

	b, err := v.Get(name).StringBytes()
	if err != nil || len(b) == 0 {
		return "", errors.Errorf("Field %q must be a string and have non-zero length", name)
	}
	return string(b), nil
}

// optionalString returns nil for missing or null field of v
func optionalString(v *fastjson.Value, name string) (*string, error) {
	field := v.Get(name)
	if field == nil || field.Type() == fastjson.TypeNull {
		return nil, nil
	}

	b, err := field.StringBytes()
	if err != nil {
		return nil, errors.Errorf("Field %q must be a string", name)
	}
	s := string(b)
	return &s, nil
}

// stringArray returns items of optional array field of v, each item must be a string
func stringArray(v *fastjson.Value, name string) ([]string, error) {
	field := v.Get(name)
	if field == nil || field.Type() == fastjson.TypeNull {
		return nil, nil
	}

	items, err := field.Array()
	if err != nil {
		return nil, errors.Errorf("Field %q must be an array", name)
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		b, err := item.StringBytes()
		if err != nil {
			return nil, errors.Errorf("Each item in %q array field must be a string", name)
		}
		values = append(values, string(b))
	}
	return values, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	if err != nil {
		h.logger.Errorf("writing marshaled data to ResponseWriter: %v", err)
	}
}

// fail replies with status matching kind of err, unknown errors are logged and hidden
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, chat.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, chat.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, chat.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, chat.ErrConflict):
		status = http.StatusConflict
	default:
		id, _ := zapadapter.IDFromContext(r.Context())
		h.logger.Errorf("request (id: %s) %s %s: %v", id, r.Method, r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Error(w, err.Error(), status)
}
