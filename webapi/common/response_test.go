package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, fiber.StatusInternalServerError},
		{domain.ErrRefreshInProgress, fiber.StatusConflict},
		{fmt.Errorf("parse: %w", domain.ErrInvalidDirection), fiber.StatusBadRequest},
		{domain.ErrInvalidMode, fiber.StatusBadRequest},
		{domain.ErrUnsupportedPair, fiber.StatusBadRequest},
		{fmt.Errorf("refresh ILS/CAD rate: %w", domain.ErrRateUnavailable), fiber.StatusBadGateway},
		{domain.ErrInvalidRate, fiber.StatusBadGateway},
		{fiber.ErrNotFound, fiber.StatusNotFound},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorToStatusCode(tt.err), "%v", tt.err)
	}
}

type modeBody struct {
	Mode string `json:"mode" validate:"required,oneof=total weight"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/mode", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[modeBody](c)
		if input == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "ok", input)
	})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Refresh rejected", domain.ErrRefreshInProgress, "try again later")
	})
	return app
}

func decodeProblem(t *testing.T, app *fiber.App, method, path, body string) (int, ProblemDetails) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return resp.StatusCode, pd
}

func TestBindAndValidate(t *testing.T) {
	app := newTestApp()

	status, pd := decodeProblem(t, app, fiber.MethodPost, "/mode", `{"mode":"hourly"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", pd.Title)
	assert.Equal(t, map[string]any{"Mode": "oneof"}, pd.Errors)

	status, pd = decodeProblem(t, app, fiber.MethodPost, "/mode", `{"mode":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", pd.Title)

	req := httptest.NewRequest(fiber.MethodPost, "/mode", strings.NewReader(`{"mode":"weight"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProblemDetailsJSON(t *testing.T) {
	status, pd := decodeProblem(t, newTestApp(), fiber.MethodGet, "/conflict", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, ProblemDetails{
		Type:     "about:blank",
		Title:    "Refresh rejected",
		Status:   fiber.StatusConflict,
		Detail:   "try again later",
		Instance: "/conflict",
	}, pd)
}
