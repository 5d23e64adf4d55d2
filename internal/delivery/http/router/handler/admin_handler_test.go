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

func newTestAdminHandler(t *testing.T, principal entity.Principal) (*echo.Echo, *mockUsecase.MockAdminUsecase) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})

	e := newTestEcho()
	e.GET("/admin/bakers", h.ListBakers, as(principal))
	e.PATCH("/admin/bakers/:id", h.UpdateBakerStatus, as(principal))

	return e, adminUC
}

func TestAdminHandler_ListBakers(t *testing.T) {
	admin := testPrincipal(entity.RoleAdmin)
	e, adminUC := newTestAdminHandler(t, admin)
	adminUC.EXPECT().ListBakers(mock.Anything, admin, "PENDING").Return([]*entity.Profile{
		{
			ID:          uuid.New(),
			FirstName:   "Bea",
			BakerStatus: entity.BakerStatusPending.Ptr(),
			User:        &entity.User{ID: uuid.New(), Email: "bea@example.com", Role: entity.RoleBaker},
		},
	}, nil).Once()

	rec := doJSON(e, http.MethodGet, "/admin/bakers?status=PENDING", "")

	var data struct {
		Bakers []struct {
			BakerStatus string `json:"bakerStatus"`
			User        struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"bakers"`
	}
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &data)
	if assert.Len(t, data.Bakers, 1) {
		assert.Equal(t, "PENDING", data.Bakers[0].BakerStatus)
		assert.Equal(t, "bea@example.com", data.Bakers[0].User.Email)
		assert.Equal(t, "BAKER", data.Bakers[0].User.Role)
	}
}

func TestAdminHandler_UpdateBakerStatus(t *testing.T) {
	admin := testPrincipal(entity.RoleAdmin)
	profileID := uuid.New()

	t.Run("approves", func(t *testing.T) {
		e, adminUC := newTestAdminHandler(t, admin)
		adminUC.EXPECT().UpdateBakerStatus(mock.Anything, admin, profileID, "APPROVED").Return(&entity.Profile{
			ID:          profileID,
			BakerStatus: entity.BakerStatusApproved.Ptr(),
			User:        &entity.User{Email: "bea@example.com", Role: entity.RoleBaker},
		}, nil).Once()

		rec := doJSON(e, http.MethodPatch, "/admin/bakers/"+profileID.String(), `{"status":"APPROVED"}`)

		var data struct {
			Baker struct {
				BakerStatus string `json:"bakerStatus"`
			} `json:"baker"`
		}
		assert.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &data)
		assert.Equal(t, "APPROVED", data.Baker.BakerStatus)
	})

	t.Run("unknown status never reaches the usecase", func(t *testing.T) {
		e, _ := newTestAdminHandler(t, admin)

		rec := doJSON(e, http.MethodPatch, "/admin/bakers/"+profileID.String(), `{"status":"approved"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS", errorCode(t, rec))
	})

	t.Run("malformed id", func(t *testing.T) {
		e, _ := newTestAdminHandler(t, admin)

		rec := doJSON(e, http.MethodPatch, "/admin/bakers/not-a-uuid", `{"status":"APPROVED"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
	})

	t.Run("missing profile", func(t *testing.T) {
		e, adminUC := newTestAdminHandler(t, admin)
		adminUC.EXPECT().UpdateBakerStatus(mock.Anything, admin, profileID, "REJECTED").
			Return(nil, errors.WithStack(domainerrors.ErrProfileNotFound)).Once()

		rec := doJSON(e, http.MethodPatch, "/admin/bakers/"+profileID.String(), `{"status":"REJECTED"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
