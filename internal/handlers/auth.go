package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/service"
)

type session struct {
	Token        string `json:"accessToken"`
	ExpiresAt    int64  `json:"expiresAt"`
	RefreshToken string `json:"refreshToken"`
}

type register struct {
	Source string `json:"source" validate:"required,max=100"`
	Secret string `json:"secret" validate:"required,min=8,max=72"`
}

type newAgent struct {
	ID     string `json:"id"`
	Source string `json:"source"`
}

type login struct {
	Source      string `json:"source" validate:"required,max=100"`
	Secret      string `json:"secret" validate:"required"`
	Fingerprint string `json:"fingerprint" validate:"required"`
}

type refresh struct {
	Fingerprint  string `json:"fingerprint" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required,uuid"`
}

type logout struct {
	RefreshToken string `json:"refreshToken" validate:"required,uuid"`
}

// AuthHTTPHandler is http handler for agent auth endpoint
type AuthHTTPHandler struct {
	authSvc service.AuthService
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authSvc service.AuthService) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		authSvc: authSvc,
	}
}

// Register registers new agent
// @Summary     Register agent
// @Description Registers agent allowed to upsert tasks of its source
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       register body     register true "Agent credentials"
// @Success     201      {object} newAgent
// @Failure     400      {object} validation.PayloadError
// @Failure     409      {object} errorBody
// @Failure     500      {object} errorBody
// @Router      /api/auth/agents [post]
func (h *AuthHTTPHandler) Register(c echo.Context) error {
	var r register
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&r); err != nil {
		return err
	}

	agent, err := h.authSvc.Register(c.Request().Context(), r.Source, r.Secret)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &newAgent{
		ID:     agent.ID,
		Source: agent.Source,
	})
}

// Login logins agent
// @Summary     Login agent
// @Description Verifies agent credentials, signs access and refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login  body     login true "Agent credentials"
// @Success     200    {object} session
// @Failure     400    {object} validation.PayloadError
// @Failure     401    {object} errorBody
// @Failure     500    {object} errorBody
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	jwt, rfrToken, err := h.authSvc.Login(c.Request().Context(), lgn.Source, lgn.Secret, lgn.Fingerprint, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:        jwt.Signed,
		ExpiresAt:    jwt.ExpiresAt,
		RefreshToken: rfrToken.ID,
	})
}

// Logout logouts agent
// @Summary     Logout agent
// @Description Removes refresh token
// @Tags        auth
// @Accept      json
// @Param       logout body     logout true "Refresh token id"
// @Success     200    "Successful status code"
// @Failure     400    {object} validation.PayloadError
// @Failure     500    {object} errorBody
// @Router      /api/auth/logout [post]
func (h *AuthHTTPHandler) Logout(c echo.Context) error {
	var lgt logout
	if err := c.Bind(&lgt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgt); err != nil {
		return err
	}

	if err := h.authSvc.Logout(c.Request().Context(), lgt.RefreshToken); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Refresh refreshes agent session
// @Summary     Refresh session
// @Description Signs new access token and rotates refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       refresh body     refresh true "Fingerprint and refresh token id"
// @Success     200     {object} session
// @Failure     400     {object} validation.PayloadError
// @Failure     401     {object} errorBody
// @Failure     500     {object} errorBody
// @Router      /api/auth/refresh [post]
func (h *AuthHTTPHandler) Refresh(c echo.Context) error {
	var r refresh
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&r); err != nil {
		return err
	}

	jwt, rfrToken, err := h.authSvc.Refresh(c.Request().Context(), r.RefreshToken, r.Fingerprint, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:        jwt.Signed,
		ExpiresAt:    jwt.ExpiresAt,
		RefreshToken: rfrToken.ID,
	})
}
