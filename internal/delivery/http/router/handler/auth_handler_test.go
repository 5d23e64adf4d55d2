package handler

import (
	"net/http"
	"testing"
	"time"

	"bakery/config"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	mockUsecase "bakery/internal/mocks/usecase"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Config: &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour, CookieName: "bakery_session"}},
	})

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
	e.POST("/mobile/auth/register", h.MobileRegister)
	e.POST("/mobile/auth/login", h.MobileLogin)

	return e, authUC
}

func registeredBaker() *usecase.AuthOutput {
	return &usecase.AuthOutput{
		Token: "signed-token",
		User: &entity.User{
			ID:           uuid.New(),
			Email:        "baker@example.com",
			PasswordHash: "$2a$10$secret",
			Role:         entity.RoleBaker,
			Profile: &entity.Profile{
				FirstName:   "Bea",
				LastName:    "Baker",
				BakerStatus: entity.BakerStatusPending.Ptr(),
			},
		},
	}
}

const registerBody = `{"email":"baker@example.com","password":"secret1","firstName":"Bea","lastName":"Baker","role":"BAKER"}`

func TestAuthHandler_Register_SetsSessionCookie(t *testing.T) {
	e, authUC := newTestAuthHandler(t)
	authUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Email:     "baker@example.com",
		Password:  "secret1",
		FirstName: "Bea",
		LastName:  "Baker",
		Role:      "BAKER",
	}).Return(registeredBaker(), nil).Once()

	rec := doJSON(e, http.MethodPost, "/auth/register", registerBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "signed-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "bakery_session", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	var data struct {
		User struct {
			Email   string `json:"email"`
			Role    string `json:"role"`
			Profile struct {
				BakerStatus string `json:"bakerStatus"`
			} `json:"profile"`
		} `json:"user"`
	}
	decodeData(t, rec, &data)
	assert.Equal(t, "baker@example.com", data.User.Email)
	assert.Equal(t, "BAKER", data.User.Role)
	assert.Equal(t, "PENDING", data.User.Profile.BakerStatus)
}

func TestAuthHandler_MobileRegister_ReturnsToken(t *testing.T) {
	e, authUC := newTestAuthHandler(t)
	authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(registeredBaker(), nil).Once()

	rec := doJSON(e, http.MethodPost, "/mobile/auth/register", registerBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	var data struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeData(t, rec, &data)
	assert.Equal(t, "signed-token", data.Token)
	assert.Equal(t, "baker@example.com", data.User.Email)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e, authUC := newTestAuthHandler(t)
	authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)).Once()

	rec := doJSON(e, http.MethodPost, "/auth/register", registerBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	e, _ := newTestAuthHandler(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("missing password is rejected before the usecase", func(t *testing.T) {
		e, _ := newTestAuthHandler(t)

		rec := doJSON(e, http.MethodPost, "/mobile/auth/login", `{"email":"a@b.co"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		e, authUC := newTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@b.co", Password: "wrong"}).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

		rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
	})

	t.Run("web login sets cookie", func(t *testing.T) {
		e, authUC := newTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(registeredBaker(), nil).Once()

		rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"baker@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, rec.Result().Cookies(), 1)
		assert.Equal(t, "signed-token", rec.Result().Cookies()[0].Value)
	})
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e, _ := newTestAuthHandler(t)

	rec := doJSON(e, http.MethodPost, "/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "bakery_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
