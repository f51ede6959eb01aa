package notification

import (
	"net/http"
	"strconv"

	"socialnet/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	items, err := h.svc.List(uid, limit, offset)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, items, http.StatusOK)
	return nil
}

func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	count, err := h.svc.MarkAllRead(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "all notifications marked as read", "updated": count}, http.StatusOK)
	return nil
}
