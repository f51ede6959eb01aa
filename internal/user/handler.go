package user

import (
	"net/http"
	"strconv"

	"socialnet/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) error {
	viewer := httpx.ViewerFromCtx(r)
	u, err := h.svc.Get(viewer, r.PathValue("id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	body, err := httpx.DecodeBody[UpdateReq](r)
	if err != nil {
		return err
	}
	u, err := h.svc.Update(uid, body)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "profile updated", "user": u}, http.StatusOK)
	return nil
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) error {
	if _, err := httpx.UserFromCtx(r); err != nil {
		return err
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	users, err := h.svc.Search(r.URL.Query().Get("q"), limit)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, users, http.StatusOK)
	return nil
}
