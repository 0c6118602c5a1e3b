package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/auth"
	"github.com/umalmyha/taskdesk/internal/config"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/repository"
	"github.com/umalmyha/taskdesk/pkg/db/transactor"
)

// AuthService authenticates agents
type AuthService interface {
	Register(ctx context.Context, source, secret string) (*model.Agent, error)
	Login(ctx context.Context, source, secret, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error)
	Refresh(ctx context.Context, tokenID, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error)
	Logout(ctx context.Context, tokenID string) error
}

type authService struct {
	jwtIssuer    *auth.JwtIssuer
	rfrTokenCfg  *config.RefreshTokenCfg
	trx          transactor.Transactor
	agentRepo    repository.AgentRepository
	rfrTokenRepo repository.RefreshTokenRepository
}

// NewAuthService builds AuthService
func NewAuthService(
	jwtIssuer *auth.JwtIssuer,
	rfrTokenCfg *config.RefreshTokenCfg,
	trx transactor.Transactor,
	agentRepo repository.AgentRepository,
	rfrTokenRepo repository.RefreshTokenRepository,
) AuthService {
	return &authService{
		jwtIssuer:    jwtIssuer,
		rfrTokenCfg:  rfrTokenCfg,
		trx:          trx,
		agentRepo:    agentRepo,
		rfrTokenRepo: rfrTokenRepo,
	}
}

func (s *authService) Register(ctx context.Context, source, secret string) (*model.Agent, error) {
	existing, err := s.agentRepo.FindBySource(ctx, source)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("agent for source %s already registered", source))
	}

	hash, err := auth.HashSecret(secret)
	if err != nil {
		return nil, err
	}

	a := &model.Agent{
		ID:         uuid.NewString(),
		Source:     source,
		SecretHash: hash,
	}

	if err := s.agentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authService) Login(ctx context.Context, source, secret, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	a, err := s.agentRepo.FindBySource(ctx, source)
	if err != nil {
		return nil, nil, err
	}

	if a == nil {
		return nil, nil, echo.ErrUnauthorized
	}

	if err := auth.VerifySecret(a.SecretHash, secret); err != nil {
		return nil, nil, echo.ErrUnauthorized
	}

	jwtToken, err := s.jwtIssuer.Sign(a.ID, a.Source, now)
	if err != nil {
		return nil, nil, err
	}

	rfrToken := auth.NewRefreshToken(a.ID, fingerprint, s.rfrTokenCfg.TimeToLive, now)

	err = s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		tokens, err := s.rfrTokenRepo.FindTokensByAgentID(ctx, a.ID)
		if err != nil {
			return err
		}

		// agent has too many sessions, drop all of them
		if len(tokens) >= s.rfrTokenCfg.MaxCount {
			if err := s.rfrTokenRepo.DeleteByAgentID(ctx, a.ID); err != nil {
				return err
			}
		}

		return s.rfrTokenRepo.Create(ctx, rfrToken)
	})
	if err != nil {
		return nil, nil, err
	}

	return jwtToken, rfrToken, nil
}

// Refresh rotates refresh token. Presented token is burned even if the check fails.
func (s *authService) Refresh(ctx context.Context, tokenID, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	rfrToken, err := s.rfrTokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		return nil, nil, err
	}

	if rfrToken == nil {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token provided")
	}

	if err := s.rfrTokenRepo.DeleteByID(ctx, rfrToken.ID); err != nil {
		return nil, nil, err
	}

	if rfrToken.Fingerprint != fingerprint {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token provided")
	}

	if rfrToken.Expired(now) {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "refresh token is expired")
	}

	a, err := s.agentRepo.FindByID(ctx, rfrToken.AgentID)
	if err != nil {
		return nil, nil, err
	}

	if a == nil {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "agent doesn't exist anymore")
	}

	jwtToken, err := s.jwtIssuer.Sign(a.ID, a.Source, now)
	if err != nil {
		return nil, nil, err
	}

	newRfrToken := auth.NewRefreshToken(a.ID, fingerprint, s.rfrTokenCfg.TimeToLive, now)
	if err := s.rfrTokenRepo.Create(ctx, newRfrToken); err != nil {
		return nil, nil, err
	}

	return jwtToken, newRfrToken, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string) error {
	return s.rfrTokenRepo.DeleteByID(ctx, tokenID)
}
