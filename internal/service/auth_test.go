package service

import (
	"context"
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/taskdesk/internal/auth"
	"github.com/umalmyha/taskdesk/internal/config"
	"github.com/umalmyha/taskdesk/internal/model"
	"github.com/umalmyha/taskdesk/internal/repository/mocks"
)

const (
	jwtAlgoEd25519 = "EdDSA"
	jwtIssuerClaim = "test-issuer"
	jwtTimeToLive  = 3 * time.Minute
)

const (
	refreshTokenMaxCount   = 2
	refreshTokenTimeToLive = 720 * time.Hour
)

var testAuthCtx = context.Background()
var testSecret = "agent_secret"
var testFingerprint = "87c37298-2f3d-40a1-9438-f45d2d819206"

type authServiceTestSuite struct {
	suite.Suite
	authSvc         AuthService
	agentRpsMock    *mocks.AgentRepository
	rfrTokenRpsMock *mocks.RefreshTokenRepository
	agent           *model.Agent
	rfrToken        *model.RefreshToken
}

func (s *authServiceTestSuite) SetupSuite() {
	hash, err := auth.HashSecret(testSecret)
	s.Require().NoError(err, "failed to hash secret")

	s.agent = &model.Agent{
		ID:         "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
		Source:     "crm",
		SecretHash: hash,
	}

	s.rfrToken = &model.RefreshToken{
		ID:          "1165dfc0-2dd0-4bea-ac69-4462f1cacacf",
		AgentID:     s.agent.ID,
		Fingerprint: testFingerprint,
		ExpiresIn:   int(refreshTokenTimeToLive.Seconds()),
		CreatedAt:   testNow,
	}
}

func (s *authServiceTestSuite) SetupTest() {
	t := s.T()

	_, privateKey, err := ed25519.GenerateKey(nil)
	s.Require().NoError(err, "failed to generate key")

	jwtIssuer := auth.NewJwtIssuer(jwtIssuerClaim, jwt.GetSigningMethod(jwtAlgoEd25519), jwtTimeToLive, privateKey)
	rfrTokenCfg := &config.RefreshTokenCfg{MaxCount: refreshTokenMaxCount, TimeToLive: refreshTokenTimeToLive}

	s.agentRpsMock = mocks.NewAgentRepository(t)
	s.rfrTokenRpsMock = mocks.NewRefreshTokenRepository(t)
	s.authSvc = NewAuthService(jwtIssuer, rfrTokenCfg, passthroughTransactor(t), s.agentRpsMock, s.rfrTokenRpsMock)
}

func (s *authServiceTestSuite) TestRegisterSourceReserved() {
	s.agentRpsMock.On("FindBySource", testAuthCtx, s.agent.Source).Return(s.agent, nil).Once()

	s.T().Logf("register agent %s, but source already reserved", s.agent.Source)
	{
		_, err := s.authSvc.Register(testAuthCtx, s.agent.Source, testSecret)
		s.Assert().Error(err, "agent for source %s already exist but no error raised", s.agent.Source)
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestSuccessfulRegister() {
	s.agentRpsMock.On("FindBySource", testAuthCtx, s.agent.Source).Return(nil, nil).Once()
	s.agentRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*model.Agent")).Return(nil).Once()

	s.T().Logf("register agent %s and it must be registered successfully", s.agent.Source)
	{
		a, err := s.authSvc.Register(testAuthCtx, s.agent.Source, testSecret)
		s.Assert().NoError(err, "agent %s must be registered successfully", s.agent.Source)
		s.Assert().NoError(auth.VerifySecret(a.SecretHash, testSecret), "secret must be stored as hash")
	}
}

func (s *authServiceTestSuite) TestLoginUnknownSource() {
	s.agentRpsMock.On("FindBySource", testAuthCtx, s.agent.Source).Return(nil, nil).Once()

	s.T().Logf("login agent %s but source is not registered", s.agent.Source)
	{
		_, _, err := s.authSvc.Login(testAuthCtx, s.agent.Source, testSecret, testFingerprint, testNow)
		s.Assert().ErrorIs(err, echo.ErrUnauthorized, "it must be unauthorized error")
	}
}

func (s *authServiceTestSuite) TestLoginBadSecret() {
	s.agentRpsMock.On("FindBySource", testAuthCtx, s.agent.Source).Return(s.agent, nil).Once()

	s.T().Logf("login agent %s but secret is incorrect", s.agent.Source)
	{
		_, _, err := s.authSvc.Login(testAuthCtx, s.agent.Source, "invalid_secret", testFingerprint, testNow)
		s.Assert().ErrorIs(err, echo.ErrUnauthorized, "it must be unauthorized error")
	}
}

func (s *authServiceTestSuite) TestLoginSuccessAndPreviousTokensRemoved() {
	dbTokens := []*model.RefreshToken{
		{ID: "af1adce5-51a4-4d2e-a6ba-da0e7009a1bf", AgentID: s.agent.ID, Fingerprint: "86d36dcb", ExpiresIn: 1000, CreatedAt: testNow},
		{ID: "b71f0a3e-2c54-4c1a-8f8e-2a3b4c5d6e7f", AgentID: s.agent.ID, Fingerprint: "88a6a8ac", ExpiresIn: 2000, CreatedAt: testNow},
	}

	s.agentRpsMock.On("FindBySource", testAuthCtx, s.agent.Source).Return(s.agent, nil).Once()
	s.rfrTokenRpsMock.On("FindTokensByAgentID", testAuthCtx, s.agent.ID).Return(dbTokens, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByAgentID", testAuthCtx, s.agent.ID).Return(nil).Once()
	s.rfrTokenRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

	s.T().Logf("login agent %s successfully, but all previous tokens will be removed", s.agent.Source)
	{
		jwToken, rfrToken, err := s.authSvc.Login(testAuthCtx, s.agent.Source, testSecret, testFingerprint, testNow)
		s.Assert().NoError(err, "agent login is correct but error was raised")
		s.Assert().Equal(testNow.Add(jwtTimeToLive).Unix(), jwToken.ExpiresAt, "incorrect time to live was set for jwt")
		s.Assert().Equal(int(refreshTokenTimeToLive.Seconds()), rfrToken.ExpiresIn, "expires in is set incorrectly")
		s.rfrTokenRpsMock.AssertCalled(s.T(), "DeleteByAgentID", testAuthCtx, s.agent.ID)
	}
}

func (s *authServiceTestSuite) TestRefreshInvalidToken() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.rfrToken.ID).Return(nil, nil).Once()

	s.T().Log("refresh with invalid token")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, s.rfrToken.ID, testFingerprint, testNow)
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshInvalidFingerprint() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.rfrToken.ID).Return(s.rfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.rfrToken.ID).Return(nil).Once()

	s.T().Log("refresh with invalid fingerprint burns the token")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, s.rfrToken.ID, "461b07b5-3373-495d-b26b-d689a0c8a557", testNow)
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
		s.rfrTokenRpsMock.AssertCalled(s.T(), "DeleteByID", testAuthCtx, s.rfrToken.ID)
	}
}

func (s *authServiceTestSuite) TestRefreshExpiredToken() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.rfrToken.ID).Return(s.rfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.rfrToken.ID).Return(nil).Once()

	s.T().Log("refresh with already expired token")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, s.rfrToken.ID, testFingerprint, testNow.Add(725*time.Hour))
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshSuccessful() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.rfrToken.ID).Return(s.rfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.rfrToken.ID).Return(nil).Once()
	s.agentRpsMock.On("FindByID", testAuthCtx, s.agent.ID).Return(s.agent, nil).Once()
	s.rfrTokenRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

	s.T().Log("refresh with valid token rotates it")
	{
		jwToken, rfrToken, err := s.authSvc.Refresh(testAuthCtx, s.rfrToken.ID, testFingerprint, testNow)
		s.Assert().NoError(err, "refresh request is correctly sent but error raised")
		s.Assert().Equal(testNow.Add(jwtTimeToLive).Unix(), jwToken.ExpiresAt, "incorrect time to live was set for jwt")
		s.Assert().NotEqual(s.rfrToken.ID, rfrToken.ID, "refresh token must be rotated")
	}
}

func (s *authServiceTestSuite) TestLogout() {
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.rfrToken.ID).Return(nil).Once()

	s.T().Log("logout removes refresh token")
	{
		err := s.authSvc.Logout(testAuthCtx, s.rfrToken.ID)
		s.Assert().NoError(err, "logout request is correct but error was raised")
	}
}

// start auth service test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(authServiceTestSuite))
}
