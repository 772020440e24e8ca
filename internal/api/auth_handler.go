package api

import (
	"errors"
	"net/http"

	"github.com/dkrasnov/shop-api/internal/api/shared"
	"github.com/dkrasnov/shop-api/internal/domain"
	"github.com/dkrasnov/shop-api/internal/platform/logger"
	"github.com/dkrasnov/shop-api/internal/redact"
	"github.com/dkrasnov/shop-api/internal/service/auth"
	"github.com/dkrasnov/shop-api/internal/store"
)

// authFailedMessage is returned verbatim for every login failure. Absent
// user and wrong password must be indistinguishable to the caller.
const authFailedMessage = "Authentication failed, invalid username or password."

// signupFailedMessage is the generic outcome when persistence fails during
// signup; the root cause is logged, never surfaced.
const signupFailedMessage = "Creating the user failed."

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Signup handles the /signup endpoint.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	var req SignupRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid email or password format")
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// The store hashes the password and awaits the insert; only the hash
	// is ever written.
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			HandleAPIError(w, r, err, "")
			return
		}
		log.Error("failed to create user", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, signupFailedMessage)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		log.Error("failed to generate token", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, signupFailedMessage)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Token: token,
		User:  AuthUser{Email: user.Email},
	})
}

// Login handles the /login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid email or password format")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn the same bcrypt work as a real mismatch so the
			// absent-user path is timing-uniform with wrong-password.
			_ = h.passwordVerifier.CompareDummy(req.Password)
		} else {
			log.Error("failed to get user by email", "error", redact.Error(err))
		}
		shared.RespondWithError(w, r, http.StatusUnauthorized, authFailedMessage)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, authFailedMessage)
		return
	}

	// Fresh token, fresh expiry window on every login.
	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		log.Error("failed to generate token", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token: token,
		User:  AuthUser{Email: user.Email},
	})
}
