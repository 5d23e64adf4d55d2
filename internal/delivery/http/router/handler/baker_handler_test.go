package handler

import (
	"net/http"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	mockUsecase "bakery/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestBakerHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockDirectoryUsecase) {
	directoryUC := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewBakerHandler(BakerHandlerParams{DirectoryUC: directoryUC})

	e := newTestEcho()
	e.GET("/bakers", h.ListBakers)
	e.GET("/bakers/:id", h.GetBaker)
	e.GET("/bakers/:id/qrcode", h.QRCode)

	return e, directoryUC
}

func approvedBaker() *entity.Profile {
	return &entity.Profile{
		ID:           uuid.New(),
		FirstName:    "Bea",
		LastName:     "Baker",
		BusinessName: "Bea's Buns",
		Specialties:  []string{"bread"},
		BakerStatus:  entity.BakerStatusApproved.Ptr(),
		User:         &entity.User{ID: uuid.New(), Email: "bea@example.com", Role: entity.RoleBaker},
	}
}

func TestBakerHandler_ListBakers_PublicProjection(t *testing.T) {
	e, directoryUC := newTestBakerHandler(t)
	directoryUC.EXPECT().ListApprovedBakers(mock.Anything).Return([]*entity.Profile{approvedBaker()}, nil).Once()

	rec := doJSON(e, http.MethodGet, "/bakers", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bakerStatus")
	assert.NotContains(t, rec.Body.String(), "role")

	var data struct {
		Bakers []struct {
			BusinessName string `json:"businessName"`
			User         struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"bakers"`
	}
	decodeData(t, rec, &data)
	if assert.Len(t, data.Bakers, 1) {
		assert.Equal(t, "Bea's Buns", data.Bakers[0].BusinessName)
		assert.Equal(t, "bea@example.com", data.Bakers[0].User.Email)
	}
}

func TestBakerHandler_GetBaker(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, directoryUC := newTestBakerHandler(t)
		baker := approvedBaker()
		directoryUC.EXPECT().GetBaker(mock.Anything, baker.ID).Return(baker, nil).Once()

		rec := doJSON(e, http.MethodGet, "/bakers/"+baker.ID.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not a baker", func(t *testing.T) {
		e, directoryUC := newTestBakerHandler(t)
		id := uuid.New()
		directoryUC.EXPECT().GetBaker(mock.Anything, id).Return(nil, errors.WithStack(domainerrors.ErrNotABaker)).Once()

		rec := doJSON(e, http.MethodGet, "/bakers/"+id.String(), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "NOT_A_BAKER", errorCode(t, rec))
	})

	t.Run("malformed id", func(t *testing.T) {
		e, _ := newTestBakerHandler(t)

		rec := doJSON(e, http.MethodGet, "/bakers/42", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBakerHandler_QRCode(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		e, directoryUC := newTestBakerHandler(t)
		id := uuid.New()
		png := []byte("\x89PNG\r\n\x1a\n")
		directoryUC.EXPECT().BakerQRCode(mock.Anything, id).Return(png, nil).Once()

		rec := doJSON(e, http.MethodGet, "/bakers/"+id.String()+"/qrcode", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("unapproved baker", func(t *testing.T) {
		e, directoryUC := newTestBakerHandler(t)
		id := uuid.New()
		directoryUC.EXPECT().BakerQRCode(mock.Anything, id).Return(nil, errors.WithStack(domainerrors.ErrBakerNotFound)).Once()

		rec := doJSON(e, http.MethodGet, "/bakers/"+id.String()+"/qrcode", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
