package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

// successResponse is the canonical envelope for all successful responses.
type successResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       any               `json:"data,omitempty"`
	Pagination *ports.Pagination `json:"pagination,omitempty"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, successResponse{Success: true, Data: data})
}

func respondMessage(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, successResponse{Success: true, Message: message, Data: data})
}

func respondPage(c echo.Context, code int, data any, p ports.Pagination) error {
	return c.JSON(code, successResponse{Success: true, Data: data, Pagination: &p})
}
