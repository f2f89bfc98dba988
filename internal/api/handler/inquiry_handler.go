package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/api/metrics"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

type InquiryHandler struct {
	inquiryService ports.InquiryService
}

func NewInquiryHandler(inquiryService ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

type createInquiryRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone,omitempty"`
	Subject         string `json:"subject,omitempty"`
	Message         string `json:"message" validate:"required,min=10"`
	ProjectInterest string `json:"project_interest,omitempty"`
	BudgetRange     string `json:"budget_range,omitempty"`
}

type updateInquiryRequest struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=new in_progress resolved closed"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Create accepts a contact-form submission from the public site.
//
// @Summary      Submit an inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      createInquiryRequest  true  "Inquiry details"
// @Success      201   {object}  domain.Inquiry
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry, err := h.inquiryService.Create(c.Request().Context(), ports.CreateInquiryInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Subject:         req.Subject,
		Message:         req.Message,
		ProjectInterest: req.ProjectInterest,
		BudgetRange:     req.BudgetRange,
	})
	if err != nil {
		return err
	}

	metrics.InquiriesReceivedTotal.Inc()
	return respondMessage(c, http.StatusCreated, "thank you, we will get back to you shortly", inquiry)
}

// List returns a page of inquiries for the admin panel.
//
// @Summary      List inquiries
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Status filter"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  map[string]any
// @Router       /api/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	filter := ports.ListInquiriesFilter{Status: c.QueryParam("status")}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	list, err := h.inquiryService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, list.Items, list.Pagination)
}

// @Summary      Get inquiry
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Inquiry id"
// @Success      200  {object}  domain.Inquiry
// @Failure      404  {object}  map[string]any
// @Router       /api/inquiries/{id} [get]
func (h *InquiryHandler) Get(c echo.Context) error {
	inquiry, err := h.inquiryService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, inquiry)
}

// Update changes the handling fields of an inquiry.
//
// @Summary      Update inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Inquiry id"
// @Param        body  body      updateInquiryRequest  true  "Fields to update"
// @Success      200   {object}  domain.Inquiry
// @Failure      404   {object}  map[string]any
// @Router       /api/inquiries/{id} [put]
func (h *InquiryHandler) Update(c echo.Context) error {
	var req updateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry, err := h.inquiryService.Update(c.Request().Context(), c.Param("id"), ports.UpdateInquiryInput{
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, inquiry)
}

// @Summary      Delete inquiry
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	if err := h.inquiryService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "inquiry deleted", nil)
}

// Stats returns the by-status inquiry breakdown.
//
// @Summary      Inquiry statistics
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.InquiryStats
// @Router       /api/inquiries/stats [get]
func (h *InquiryHandler) Stats(c echo.Context) error {
	stats, err := h.inquiryService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats)
}
