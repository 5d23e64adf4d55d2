package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(fn func(c echo.Context) error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = fn(c)

	return rec
}

func TestSuccess(t *testing.T) {
	rec := record(func(c echo.Context) error {
		return Success(c, http.StatusCreated, map[string]string{"id": "1"}, "")
	})

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Success", body["message"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		details     string
		wantMessage string
		wantDetails any
	}{
		{name: "client error keeps details", status: http.StatusBadRequest, details: "quantity", wantMessage: "Bad Request", wantDetails: "quantity"},
		{name: "server error hides details", status: http.StatusInternalServerError, details: "sql: boom", wantMessage: "Internal Server Error", wantDetails: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(func(c echo.Context) error {
				return Error(c, tt.status, "CODE", "", tt.details)
			})

			var body struct {
				Success bool           `json:"success"`
				Code    int            `json:"code"`
				Message string         `json:"message"`
				Error   map[string]any `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, "CODE", body.Error["code"])
			assert.Equal(t, tt.wantDetails, body.Error["details"])
		})
	}
}
