// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"bakery/config"
	"bakery/internal/delivery/http/response"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCookieName = "session"

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string    `json:"token"`
	User  *userView `json:"user"`
}

type userResponse struct {
	User *userView `json:"user"`
}

// AuthHandler serves registration and login for browsers (session cookie) and mobile clients (bearer token).
type AuthHandler struct {
	uc           usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
	tokenTTL     time.Duration
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{uc: params.AuthUC, cookieName: defaultCookieName}
	if auth := params.Config.Auth; auth != nil {
		if auth.CookieName != "" {
			h.cookieName = auth.CookieName
		}
		h.cookieSecure = auth.CookieSecure
		h.tokenTTL = auth.TokenTTL
	}

	return h
}

// Register opens an account and starts a browser session.
func (h *AuthHandler) Register(c echo.Context) error {
	output, err := h.register(c)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, userResponse{User: newUserView(output.User)}, "User registered successfully")
}

// MobileRegister opens an account and returns the bearer token.
func (h *AuthHandler) MobileRegister(c echo.Context) error {
	output, err := h.register(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, tokenResponse{Token: output.Token, User: newUserView(output.User)}, "User registered successfully")
}

// Login checks the credentials and starts a browser session.
func (h *AuthHandler) Login(c echo.Context) error {
	output, err := h.login(c)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusOK, userResponse{User: newUserView(output.User)}, "Login successful")
}

// MobileLogin checks the credentials and returns the bearer token.
func (h *AuthHandler) MobileLogin(c echo.Context) error {
	output, err := h.login(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, tokenResponse{Token: output.Token, User: newUserView(output.User)}, "Login successful")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

func (h *AuthHandler) register(c echo.Context) (*usecase.AuthOutput, error) {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("Invalid registration input"))
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return output, nil
}

func (h *AuthHandler) login(c echo.Context) (*usecase.AuthOutput, error) {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("Invalid login input"))
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return output, nil
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if h.tokenTTL > 0 {
		cookie.MaxAge = int(h.tokenTTL.Seconds())
	}

	c.SetCookie(cookie)
}
