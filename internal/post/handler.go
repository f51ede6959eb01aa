package post

import (
	"net/http"
	"strconv"

	"socialnet/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	body, err := httpx.DecodeBody[CreateReq](r)
	if err != nil {
		return err
	}
	p, err := h.svc.Create(uid, body)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "post created", "post": p}, http.StatusCreated)
	return nil
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	p, err := h.svc.Get(httpx.ViewerFromCtx(r), r.PathValue("id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}

func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) error {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	posts, err := h.svc.ListPublic(page)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"page":    max(page, 1),
		"results": len(posts),
		"posts":   posts,
	}, http.StatusOK)
	return nil
}

func (h *Handler) ByHashtag(w http.ResponseWriter, r *http.Request) error {
	posts, err := h.svc.ByHashtag(httpx.ViewerFromCtx(r), r.PathValue("tag"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, posts, http.StatusOK)
	return nil
}

func (h *Handler) ByAuthor(w http.ResponseWriter, r *http.Request) error {
	posts, err := h.svc.ByAuthor(httpx.ViewerFromCtx(r), r.PathValue("id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, posts, http.StatusOK)
	return nil
}
