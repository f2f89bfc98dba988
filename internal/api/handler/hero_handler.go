package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/api/metrics"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

type HeroHandler struct {
	heroService ports.HeroService
}

func NewHeroHandler(heroService ports.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

type updateHeroRequest struct {
	Page            *string `json:"page,omitempty" validate:"omitempty,min=2"`
	BackgroundImage *string `json:"background_image,omitempty" validate:"omitempty,url"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// List returns hero sections. Anonymous callers see active ones only.
//
// @Summary      List hero sections
// @Tags         hero-sections
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/hero-sections [get]
func (h *HeroHandler) List(c echo.Context) error {
	sections, err := h.heroService.List(c.Request().Context(), callerIdentity(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, sections)
}

// @Summary      Get hero section
// @Tags         hero-sections
// @Produce      json
// @Param        id  path  string  true  "Hero section id"
// @Success      200  {object}  domain.HeroSection
// @Failure      404  {object}  map[string]any
// @Router       /api/hero-sections/{id} [get]
func (h *HeroHandler) Get(c echo.Context) error {
	section, err := h.heroService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, section)
}

// Create adds a hero section. Expects multipart form data: a "page" field
// and an optional "image" file uploaded as the background.
//
// @Summary      Create hero section
// @Tags         hero-sections
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        page       formData  string  true   "Target page"
// @Param        is_active  formData  bool    false  "Active flag"
// @Param        image      formData  file    false  "Background image"
// @Success      201  {object}  domain.HeroSection
// @Router       /api/hero-sections [post]
func (h *HeroHandler) Create(c echo.Context) error {
	page := c.FormValue("page")
	if page == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "page is required")
	}

	input := ports.CreateHeroInput{Page: page}
	if v := c.FormValue("is_active"); v != "" {
		active := v == "true"
		input.IsActive = &active
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot read image file")
		}
		defer file.Close()
		input.Image = &ports.ImageUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	section, err := h.heroService.Create(c.Request().Context(), input)
	if err != nil {
		if input.Image != nil {
			metrics.ImageUploadsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	if input.Image != nil {
		metrics.ImageUploadsTotal.WithLabelValues("success").Inc()
	}
	return respond(c, http.StatusCreated, section)
}

// @Summary      Update hero section
// @Tags         hero-sections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Hero section id"
// @Param        body  body      updateHeroRequest  true  "Fields to update"
// @Success      200   {object}  domain.HeroSection
// @Failure      404   {object}  map[string]any
// @Router       /api/hero-sections/{id} [put]
func (h *HeroHandler) Update(c echo.Context) error {
	var req updateHeroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	section, err := h.heroService.Update(c.Request().Context(), c.Param("id"), ports.UpdateHeroInput{
		Page:            req.Page,
		BackgroundImage: req.BackgroundImage,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, section)
}

// @Summary      Delete hero section
// @Tags         hero-sections
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Hero section id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/hero-sections/{id} [delete]
func (h *HeroHandler) Delete(c echo.Context) error {
	if err := h.heroService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "hero section deleted", nil)
}
