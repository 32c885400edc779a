package server

import (
	"bytes"
	"github.com/rs/xid"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"
	"io"
	"messenger/internal/identity"
	"messenger/internal/storage/zapadapter"
	"mime"
	"net/http"
	"strings"
)

// maxBodySize limits request bodies accepted by enforceJSON
const maxBodySize = 1 << 20

// authCookie carries session token for browser clients
const authCookie = "auth"

// enforceJSON rejects bodies which are not JSON or exceed maxBodySize,
// a request without Content-Type is treated as application/json
func enforceJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		if contentType != "" {
			mt, _, err := mime.ParseMediaType(contentType)
			if err != nil {
				http.Error(w, "Malformed Content-Type header", http.StatusBadRequest)
				return
			}

			if mt != "application/json" {
				http.Error(w, "Content-Type header must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		} else {
			r.Header.Set("Content-Type", "application/json")
		}

		var bodyBuf bytes.Buffer
		bodyReader := io.TeeReader(http.MaxBytesReader(w, r.Body, maxBodySize), &bodyBuf)
		body, err := io.ReadAll(bodyReader)
		if err != nil {
			http.Error(w, "Can not read request body", http.StatusBadRequest)
			return
		}

		if len(body) == 0 {
			http.Error(w, "No body provided", http.StatusBadRequest)
			return
		}

		err = fastjson.ValidateBytes(body)
		if err != nil {
			http.Error(w, "Malformed JSON", http.StatusBadRequest)
			return
		}

		r.Body = io.NopCloser(&bodyBuf)

		next.ServeHTTP(w, r)
	})
}

func log(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := xid.New().String()

		ctx := zapadapter.NewContextWithID(r.Context(), id)
		rwID := r.WithContext(ctx)

		logger.Info("incoming http request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("uri", r.URL.Path),
			zap.String("ip", r.RemoteAddr),
		)

		next.ServeHTTP(w, rwID)
	})
}

// authenticate verifies session token taken from Authorization header or auth cookie,
// withQuery additionally allows "token" query parameter used by websocket clients
func authenticate(next http.Handler, v *identity.Verifier, withQuery bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := v.Verify(sessionToken(r, withQuery))
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := identity.NewContext(r.Context(), s)
		ctx = zapadapter.NewContextWithUserID(ctx, s.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionToken(r *http.Request, withQuery bool) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := r.Cookie(authCookie); err == nil {
		return cookie.Value
	}

	if withQuery {
		return r.URL.Query().Get("token")
	}
	return ""
}
