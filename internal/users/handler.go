package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"visioon-backend/internal/shared/auth"
	"visioon-backend/internal/shared/server/respond"
	"visioon-backend/internal/shared/telemetry"
)

// Handler exposes the credential-based signup/login endpoints.
type Handler struct {
	Svc      *Service
	Sessions *auth.Sessions
}

func NewHandler(svc *Service, sessions *auth.Sessions) *Handler {
	return &Handler{Svc: svc, Sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.signup)
	rg.POST("/auth/login", h.login)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	user, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, verr.Message)
		case errors.Is(err, ErrDuplicateEmail):
			respond.Error(c, http.StatusBadRequest, "User with this email already exists")
		default:
			telemetry.Error("signup.failed", map[string]any{"err": err.Error()})
			respond.Error(c, http.StatusInternalServerError, "Something went wrong during signup")
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"success": true,
		"user":    userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		telemetry.Error("login.failed", map[string]any{"err": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "Something went wrong during login")
		return
	}

	token, err := h.Sessions.Sign(auth.Identity{UserID: user.ID, Email: user.Email, Name: user.Name})
	if err != nil {
		telemetry.Error("login.sign_token_failed", map[string]any{"err": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "Something went wrong during login")
		return
	}

	respond.OK(c, gin.H{
		"token": token,
		"user":  userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}
