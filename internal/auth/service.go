package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/repository"
)

// SignupInput is a new account form
type SignupInput struct {
	LoginID         string
	Password        string
	ConfirmPassword string
	Name            string
}

// LoginResult carries the issued bearer token
type LoginResult struct {
	AccountID int64     `json:"account_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service handles signup, login and bearer authentication
type Service interface {
	Signup(ctx context.Context, input SignupInput) (*domain.Account, error)
	Login(ctx context.Context, loginID, password string) (*LoginResult, error)
	// Authenticate resolves a bearer token to an existing account id
	Authenticate(ctx context.Context, token string) (int64, error)
}

type service struct {
	repo   repository.Account
	tokens *TokenManager
	cost   int
}

// NewService creates an auth service
func NewService(repo repository.Account, tokens *TokenManager) Service {
	return &service{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost}
}

func (s *service) Signup(ctx context.Context, input SignupInput) (*domain.Account, error) {
	if err := validateSignup(&input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHashPasswordFailed, err)
	}

	account := &domain.Account{
		LoginID:      input.LoginID,
		PasswordHash: string(hash),
		Name:         input.Name,
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateAccountFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgAccountCreated, "account_id", account.ID)
	return account, nil
}

func (s *service) Login(ctx context.Context, loginID, password string) (*LoginResult, error) {
	log := logger.FromContext(ctx)

	account, err := s.repo.GetAccountByLoginID(ctx, strings.TrimSpace(loginID))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			log.Info(LogMsgLoginFailed, "reason", "unknown login id")
			return nil, domain.ErrWrongCredentials
		}
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		log.Info(LogMsgLoginFailed, "reason", "password mismatch", "account_id", account.ID)
		return nil, domain.ErrWrongCredentials
	}

	token, expiresAt, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgLoginSucceeded, "account_id", account.ID)
	return &LoginResult{AccountID: account.ID, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (int64, error) {
	accountID, err := s.tokens.Verify(token)
	if err != nil {
		logger.FromContext(ctx).Info(LogMsgTokenRejected, "error", err)
		return 0, err
	}

	if _, err := s.repo.GetAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return 0, fmt.Errorf(ErrMsgAccountGoneFmt, domain.ErrUnauthenticated, accountID)
		}
		return 0, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	return accountID, nil
}

// validateSignup normalizes and checks a signup form
func validateSignup(input *SignupInput) error {
	input.LoginID = strings.TrimSpace(input.LoginID)
	input.Name = strings.TrimSpace(input.Name)

	if !IsValidLoginID(input.LoginID) {
		return fmt.Errorf(ErrMsgInvalidLoginIDFmt, MaxLoginIDLength, domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		return fmt.Errorf(ErrMsgPasswordTooShortFmt, MinPasswordLength, domain.ErrInvalidInput)
	}
	if len(input.Password) > MaxPasswordLength {
		return fmt.Errorf(ErrMsgPasswordTooLongFmt, MaxPasswordLength, domain.ErrInvalidInput)
	}
	if input.Password != input.ConfirmPassword {
		return fmt.Errorf(ErrMsgPasswordMismatchFmt, domain.ErrInvalidInput)
	}
	if input.Name == "" || utf8.RuneCountInString(input.Name) > MaxNameLength {
		return fmt.Errorf(ErrMsgNameRequiredFmt, MaxNameLength, domain.ErrInvalidInput)
	}
	return nil
}

// IsValidLoginID reports whether id is 1-30 lowercase ASCII letters or digits
func IsValidLoginID(id string) bool {
	if id == "" || len(id) > MaxLoginIDLength {
		return false
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
