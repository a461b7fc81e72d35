package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GH-57/First-Project/internal/apperr"
	"github.com/GH-57/First-Project/internal/config"
	"github.com/GH-57/First-Project/internal/store"
)

// Request/Response structures

type RegisterRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"password123"`
	Nickname string `json:"nickname" example:"Nick"`
}

type RegisterResponse struct {
	Message string `json:"message" example:"회원가입이 완료되었습니다."`
}

type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	Nickname    string `json:"nickname" example:"Nick"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid credentials"`
	Message string `json:"message,omitempty" example:"Email or password is incorrect"`
}

type AuthHandler struct {
	service *AuthService
	store   store.Store
}

func NewAuthHandler(cfg config.AuthConfig, st store.Store) *AuthHandler {
	return &AuthHandler{
		service: NewAuthService(cfg),
		store:   st,
	}
}

// Register godoc
// @Summary		Register a new user
// @Description	Register a new account with email, password and nickname
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		RegisterRequest		true	"Registration data"
// @Success		200		{object}	RegisterResponse	"Account registered"
// @Failure		400		{object}	ErrorResponse		"Bad request or email already registered"
// @Failure		500		{object}	ErrorResponse		"Internal server error"
// @Router			/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	if req.Email == "" || req.Password == "" || req.Nickname == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "validation failed", "Email, password and nickname are required")
		return
	}

	hash, err := h.service.HashPassword(req.Password)
	if err != nil {
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error processing password")
		return
	}

	account := store.Account{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		Nickname:     req.Nickname,
		CreatedAt:    time.Now(),
	}

	if err := h.store.CreateAccount(r.Context(), account); err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			h.sendErrorResponse(w, http.StatusBadRequest, "email taken", "이미 등록된 이메일입니다.")
			return
		}
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error creating account")
		return
	}

	response := RegisterResponse{
		Message: "회원가입이 완료되었습니다.",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// Login godoc
// @Summary		User login
// @Description	Authenticate with a form-encoded username (email) and password, returning a bearer token
// @Tags			auth
// @Accept			x-www-form-urlencoded
// @Produce		json
// @Param			username	formData	string			true	"Account email"
// @Param			password	formData	string			true	"Account password"
// @Success		200			{object}	LoginResponse	"Login successful"
// @Failure		401			{object}	ErrorResponse	"Unauthorized - invalid credentials"
// @Failure		500			{object}	ErrorResponse	"Internal server error"
// @Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid body", "Expected form-encoded credentials")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "validation failed", "Username and password are required")
		return
	}

	account, err := h.store.AccountByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, apperr.ErrUnknownAccount) {
			// same response as a wrong password: do not reveal which part failed
			h.sendErrorResponse(w, http.StatusUnauthorized, "invalid credentials", "Email or password is incorrect")
			return
		}
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error retrieving account")
		return
	}

	if err := h.service.CheckPasswordHash(password, account.PasswordHash); err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "invalid credentials", "Email or password is incorrect")
		return
	}

	accessToken, err := h.service.GenerateJWT(account.Email)
	if err != nil {
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error generating access token")
		return
	}

	response := LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Nickname:    account.Nickname,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (h *AuthHandler) sendErrorResponse(w http.ResponseWriter, statusCode int, error string, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
