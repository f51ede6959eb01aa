package interaction

import (
	"net/http"

	"socialnet/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

type commentReq struct {
	Text string `json:"text"`
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	state, err := h.svc.ToggleLike(uid, r.PathValue("id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"state": state}, http.StatusOK)
	return nil
}

func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	state, err := h.svc.ToggleBookmark(uid, r.PathValue("id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"state": state}, http.StatusOK)
	return nil
}

func (h *Handler) Likes(w http.ResponseWriter, r *http.Request) error {
	ids, err := h.svc.Likes(httpx.ViewerFromCtx(r), r.PathValue("id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"likes": ids, "count": len(ids)}, http.StatusOK)
	return nil
}

func (h *Handler) Bookmarks(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	ids, err := h.svc.Bookmarks(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"bookmarks": ids}, http.StatusOK)
	return nil
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	body, err := httpx.DecodeBody[commentReq](r)
	if err != nil {
		return err
	}
	c, err := h.svc.AddComment(uid, r.PathValue("id"), body.Text)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "comment added", "comment": c}, http.StatusCreated)
	return nil
}
