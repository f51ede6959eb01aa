package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"socialnet/internal/shared/errs"
	"socialnet/internal/shared/jwt"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			WriteJSON(w, map[string]any{"error": err.Error()}, StatusFor(err))
		}
	})
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor maps the shared error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrSelfReference), errors.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConsistency):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DecodeBody reads a JSON body into T.
func DecodeBody[T any](r *http.Request) (T, error) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, errors.Join(errs.ErrValidation, errors.New("invalid JSON"))
	}
	return body, nil
}

type ctxKey string

const userKey ctxKey = "user_id"

var ErrNoUser = errors.New("no user in context")

func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := BearerToken(r)
		if tok == "" {
			WriteJSON(w, map[string]string{"error": "missing token"}, http.StatusUnauthorized)
			return
		}
		uid, err := jwt.Parse(tok)
		if err != nil || uid == "" {
			WriteJSON(w, map[string]string{"error": "invalid token"}, http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches the user id when a valid token is present and
// passes the request through anonymously otherwise.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok := BearerToken(r); tok != "" {
			if uid, err := jwt.Parse(tok); err == nil && uid != "" {
				r = r.WithContext(context.WithValue(r.Context(), userKey, uid))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func UserFromCtx(r *http.Request) (string, error) {
	uid, _ := r.Context().Value(userKey).(string)
	if uid == "" {
		return "", ErrNoUser
	}
	return uid, nil
}

// ViewerFromCtx is UserFromCtx for read paths: an empty id means anonymous.
func ViewerFromCtx(r *http.Request) string {
	uid, _ := r.Context().Value(userKey).(string)
	return uid
}
