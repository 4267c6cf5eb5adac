package handler

import (
	"net/http"
	"time"

	"github.com/osse101/Outfitter_Go/internal/auth"
	"github.com/osse101/Outfitter_Go/internal/logger"
)

type SignupRequest struct {
	LoginID         string `json:"login_id" validate:"required,max=30,loginid"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Name            string `json:"name" validate:"required,max=30,excludesall=\x00\n\r\t"`
}

type AccountResponse struct {
	AccountID int64  `json:"account_id"`
	LoginID   string `json:"login_id"`
	Name      string `json:"name"`
}

// HandleSignup registers a new account
// @Summary Sign up
// @Description Create an account with a lowercase alphanumeric login id
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup form"
// @Success 201 {object} DataResponse{data=AccountResponse}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/accounts/signup [post]
func HandleSignup(svc auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionSignup); err != nil {
			return
		}

		account, err := svc.Signup(r.Context(), auth.SignupInput{
			LoginID:         req.LoginID,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Name:            req.Name,
		})
		if err != nil {
			respondServiceError(w, r, ActionSignup, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgAccountCreated, "account_id", account.ID)
		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgAccountCreated,
			Data: AccountResponse{
				AccountID: account.ID,
				LoginID:   account.LoginID,
				Name:      account.Name,
			},
		})
	}
}

type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required,max=30"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccountID int64     `json:"account_id"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HandleLogin exchanges credentials for a bearer token
// @Summary Log in
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} DataResponse{data=LoginResponse}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/accounts/login [post]
func HandleLogin(svc auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionLogin); err != nil {
			return
		}

		result, err := svc.Login(r.Context(), req.LoginID, req.Password)
		if err != nil {
			respondServiceError(w, r, ActionLogin, err)
			return
		}

		w.Header().Set("Authorization", "Bearer "+result.Token)
		respondJSON(w, http.StatusOK, DataResponse{
			Message: MsgLoggedIn,
			Data: LoginResponse{
				AccountID: result.AccountID,
				Token:     result.Token,
				TokenType: "Bearer",
				ExpiresAt: result.ExpiresAt,
			},
		})
	}
}
