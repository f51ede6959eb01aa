package auth

import (
	"net/http"

	"socialnet/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.DecodeBody[RegisterReq](r)
	if err != nil {
		return err
	}
	u, tok, err := h.svc.Register(body)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, AuthResponse{
		Message: "user registered successfully",
		User:    u.Summary(),
		Token:   tok,
	}, http.StatusCreated)
	return nil
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.DecodeBody[LoginReq](r)
	if err != nil {
		return err
	}
	u, tok, err := h.svc.Login(body)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, AuthResponse{
		Message: "login successful",
		User:    u.Summary(),
		Token:   tok,
	}, http.StatusOK)
	return nil
}
