package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

type TestimonialHandler struct {
	testimonialService ports.TestimonialService
}

func NewTestimonialHandler(testimonialService ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

type createTestimonialRequest struct {
	ClientName     string `json:"client_name" validate:"required,min=2"`
	ClientPosition string `json:"client_position,omitempty"`
	ClientCompany  string `json:"client_company,omitempty"`
	ClientAvatar   string `json:"client_avatar,omitempty" validate:"omitempty,url"`
	Rating         int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Text           string `json:"testimonial_text" validate:"required,min=10"`
	ProjectID      string `json:"project_id,omitempty"`
	IsFeatured     bool   `json:"is_featured,omitempty"`
	IsPublished    bool   `json:"is_published,omitempty"`
	DisplayOrder   int    `json:"display_order,omitempty"`
}

type updateTestimonialRequest struct {
	ClientName     *string `json:"client_name,omitempty" validate:"omitempty,min=2"`
	ClientPosition *string `json:"client_position,omitempty"`
	ClientCompany  *string `json:"client_company,omitempty"`
	ClientAvatar   *string `json:"client_avatar,omitempty" validate:"omitempty,url"`
	Rating         *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Text           *string `json:"testimonial_text,omitempty" validate:"omitempty,min=10"`
	ProjectID      *string `json:"project_id,omitempty"`
	IsFeatured     *bool   `json:"is_featured,omitempty"`
	IsPublished    *bool   `json:"is_published,omitempty"`
	DisplayOrder   *int    `json:"display_order,omitempty"`
}

// List returns a page of testimonials. Anonymous callers only see published
// entries.
//
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Param        featured  query  bool  false  "Featured only"
// @Param        page      query  int   false  "Page number"
// @Param        limit     query  int   false  "Page size"
// @Success      200  {object}  map[string]any
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	filter := ports.ListTestimonialsFilter{}
	if v := c.QueryParam("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	if v := c.QueryParam("published"); v != "" {
		published := v == "true"
		filter.Published = &published
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	list, err := h.testimonialService.List(c.Request().Context(), callerIdentity(c), filter)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, list.Items, list.Pagination)
}

// @Summary      Get testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id  path  string  true  "Testimonial id"
// @Success      200  {object}  domain.Testimonial
// @Failure      404  {object}  map[string]any
// @Router       /api/testimonials/{id} [get]
func (h *TestimonialHandler) Get(c echo.Context) error {
	testimonial, err := h.testimonialService.GetByID(c.Request().Context(), callerIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, testimonial)
}

// @Summary      Create testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTestimonialRequest  true  "Testimonial details"
// @Success      201   {object}  domain.Testimonial
// @Router       /api/testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req createTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testimonial, err := h.testimonialService.Create(c.Request().Context(), ports.CreateTestimonialInput{
		ClientName:     req.ClientName,
		ClientPosition: req.ClientPosition,
		ClientCompany:  req.ClientCompany,
		ClientAvatar:   req.ClientAvatar,
		Rating:         req.Rating,
		Text:           req.Text,
		ProjectID:      req.ProjectID,
		IsFeatured:     req.IsFeatured,
		IsPublished:    req.IsPublished,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, testimonial)
}

// @Summary      Update testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Testimonial id"
// @Param        body  body      updateTestimonialRequest  true  "Fields to update"
// @Success      200   {object}  domain.Testimonial
// @Failure      404   {object}  map[string]any
// @Router       /api/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	var req updateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testimonial, err := h.testimonialService.Update(c.Request().Context(), c.Param("id"), ports.UpdateTestimonialInput{
		ClientName:     req.ClientName,
		ClientPosition: req.ClientPosition,
		ClientCompany:  req.ClientCompany,
		ClientAvatar:   req.ClientAvatar,
		Rating:         req.Rating,
		Text:           req.Text,
		ProjectID:      req.ProjectID,
		IsFeatured:     req.IsFeatured,
		IsPublished:    req.IsPublished,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, testimonial)
}

// @Summary      Delete testimonial
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Testimonial id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	if err := h.testimonialService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "testimonial deleted", nil)
}
