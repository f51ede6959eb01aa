package message

import (
	"net/http"
	"strconv"

	"socialnet/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	body, err := httpx.DecodeBody[SendReq](r)
	if err != nil {
		return err
	}
	m, err := h.svc.Send(uid, body)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "message sent", "data": m}, http.StatusCreated)
	return nil
}

func (h *Handler) Conversation(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	msgs, err := h.svc.Conversation(uid, r.PathValue("id"), limit, offset)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, msgs, http.StatusOK)
	return nil
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	count, err := h.svc.MarkRead(uid, r.PathValue("id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "messages marked as read", "updated": count}, http.StatusOK)
	return nil
}
