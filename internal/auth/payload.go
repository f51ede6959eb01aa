package auth

import "socialnet/internal/user"

type RegisterReq struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    user.Summary `json:"user"`
	Token   string       `json:"token"`
}
