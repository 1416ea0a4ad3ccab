package handler

import (
	"net/http"

	"editorradar/internal/delivery/api/middleware"
	"editorradar/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler exposes diagnostic endpoints, registered only when testRoutes.enabled is set.
type TestHandler struct{}

func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the principal resolved from the bearer token.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   roles,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint needs no token.
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "public",
	})
}
