package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/service"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
)

// login exchanges a form-encoded username/password pair for a bearer access
// token.
//
// A failed login answers 404 with a generic message so that an unknown
// username and a wrong password are indistinguishable from the outside.
// Credentials are never logged.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("malformed login form")
		utils.WriteDetail(w, "Invalid form data.", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, token, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn().Str("func", "*Handler.login").Str("username", username).Msg("login rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: "Incorrect username or password"}, http.StatusNotFound)
			return
		}
		respondError(w, r, err)
		return
	}

	log.Debug().Str("func", "*Handler.login").Int64("id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
	}, http.StatusOK)
}

// resetPassword replaces an account credential using a password-reset token.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.resetPassword").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Password updated"}, http.StatusOK)
}

// createResetToken mints a password-reset token for the account registered
// under the supplied email. Requires an authenticated caller.
func (h *Handler) createResetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createResetToken").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.CreateResetToken(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.WriteDetail(w, "Record not found.", http.StatusNotFound)
			return
		}
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ResetTokenResponse{ResetToken: token.SignedString}, http.StatusOK)
}
