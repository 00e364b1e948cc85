package users

import (
	"net/http"
	"strings"

	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/register", registerHandler(svc))
		ur.Post("/login", loginHandler(svc))

		ur.Group(func(me chi.Router) {
			me.Use(middleware.RequireAuth)
			me.Get("/me", meHandler(svc))
			me.Post("/me/password", changePasswordHandler(svc))
		})
	})
}

// registerRequest es el cuerpo de POST /users/register.
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=user service"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,max=72"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// @Summary Registrar usuario
// @Description Crea una cuenta. El email es único (sin distinguir mayúsculas); role es `user` (default) o `service`.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del usuario"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpx.DetailResponse "email already registered / validación"
// @Router /users/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, "")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     Role(req.Role),
		})
		if err != nil {
			httpx.WriteError(w, r, err, "")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// @Summary Login
// @Description Formulario OAuth2 password (`username` = email, `password`). También acepta el mismo cuerpo en JSON.
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} httpx.DetailResponse "incorrect username or password"
// @Router /users/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "application/json") {
			if err := httpx.DecodeJSON(r, &req); err != nil {
				httpx.WriteError(w, r, err, "")
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				httpx.WriteError(w, r, apperr.Invalid("invalid form body"), "")
				return
			}
			req.Username = r.PostForm.Get("username")
			req.Password = r.PostForm.Get("password")
			if err := httpx.Validate(&req); err != nil {
				httpx.WriteError(w, r, err, "")
				return
			}
		}

		tok, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			httpx.WriteError(w, r, err, "")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, tokenResponse{
			AccessToken: tok.AccessToken,
			TokenType:   tok.TokenType,
		})
	}
}

// @Summary Usuario actual
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 401 {object} httpx.DetailResponse
// @Router /users/me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, err, "User not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// @Summary Cambiar password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body changePasswordRequest true "Password actual y nuevo"
// @Success 200 {object} httpx.DetailResponse
// @Failure 400 {object} httpx.DetailResponse "old_password is incorrect"
// @Router /users/me/password [post]
func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req changePasswordRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, "")
			return
		}

		if err := svc.ChangePassword(r.Context(), claims.UserID, req.OldPassword, req.NewPassword); err != nil {
			httpx.WriteError(w, r, err, "User not found")
			return
		}
		httpx.WriteDetail(w, http.StatusOK, "Password updated")
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
