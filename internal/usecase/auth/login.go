package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	authn "github.com/BruksfildServices01/land-broker/internal/auth"
	userdomain "github.com/BruksfildServices01/land-broker/internal/domain/user"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/logging"
	"github.com/BruksfildServices01/land-broker/internal/models"
	"github.com/BruksfildServices01/land-broker/internal/ratelimit"
)

type LoginResult struct {
	User  *models.User
	Token string
}

type Login struct {
	users   userdomain.Repository
	tokens  *authn.TokenService
	limiter ratelimit.Limiter
	audit   *audit.Dispatcher
	log     logging.Logger
}

func NewLogin(
	users userdomain.Repository,
	tokens *authn.TokenService,
	limiter ratelimit.Limiter,
	audit *audit.Dispatcher,
	log logging.Logger,
) *Login {
	return &Login{
		users:   users,
		tokens:  tokens,
		limiter: limiter,
		audit:   audit,
		log:     log,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*LoginResult, error) {

	// Emails are matched exactly as stored, surrounding spaces included.
	if email == "" || password == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	key := strings.ToLower(email)

	// A broken limiter must not lock everyone out.
	allowed, err := uc.limiter.Allow(ctx, key)
	if err != nil {
		uc.log.Warn(ctx, "login limiter unavailable", "error", err)
		allowed = true
	}
	if !allowed {
		return nil, httperr.ErrBusiness(httperr.CodeTooManyAttempts)
	}

	user, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			authn.CheckDummyPassword(password)
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if !authn.CheckPassword(user.PasswordHash, password) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	role, ok := authn.ParseRole(user.Role)
	if !ok {
		uc.log.Warn(ctx, "login refused for unknown role", "user_id", user.ID, "role", user.Role)
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	token, err := uc.tokens.Issue(authn.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.limiter.Reset(ctx, key); err != nil {
		uc.log.Warn(ctx, "login limiter reset failed", "error", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   "user_login",
		Entity:   "user",
		EntityID: user.ID,
	})

	return &LoginResult{User: user, Token: token}, nil
}
