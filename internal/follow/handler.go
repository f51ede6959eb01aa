package follow

import (
	"net/http"

	"socialnet/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	state, err := h.svc.Toggle(uid, r.PathValue("id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"state": state}, http.StatusOK)
	return nil
}

func (h *Handler) FollowData(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	followers, err := h.svc.Followers(uid, 0, 0)
	if err != nil {
		return err
	}
	following, err := h.svc.Following(uid, 0, 0)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"followers": followers,
		"following": following,
	}, http.StatusOK)
	return nil
}
