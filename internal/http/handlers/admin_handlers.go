package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mpdl-apps/cleaning-inventory/internal/auth"
)

// LoginHandler godoc
// @Summary Obtain a bearer token for the destructive endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "Admin credentials"
// @Success 200 {object} LoginResult
// @Failure 400 {object} Result
// @Failure 401 {object} Result
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req UserLogin
	if err := readJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid input")
		return
	}

	token, err := authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeFailure(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		logger.Error("failed to issue token", zap.Error(err))
		writeFailure(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
