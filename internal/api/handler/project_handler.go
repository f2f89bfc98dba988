package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/api/metrics"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List returns a page of projects. Anonymous and client callers only see
// published entries; admins can filter by status.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        status    query  string  false  "Status filter (admin only)"
// @Param        category  query  string  false  "Category id"
// @Param        featured  query  bool    false  "Featured only"
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size"
// @Success      200  {object}  map[string]any
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	list, err := h.projectService.List(c.Request().Context(), callerIdentity(c), listProjectsFilter(c))
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, list.Items, list.Pagination)
}

// Get returns a single project by id.
//
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]any
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projectService.GetByID(c.Request().Context(), callerIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, project)
}

// GetBySlug returns a single project by its URL slug.
//
// @Summary      Get project by slug
// @Tags         projects
// @Produce      json
// @Param        slug  path  string  true  "Project slug"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]any
// @Router       /api/projects/slug/{slug} [get]
func (h *ProjectHandler) GetBySlug(c echo.Context) error {
	project, err := h.projectService.GetBySlug(c.Request().Context(), callerIdentity(c), c.Param("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, project)
}

// Create adds a new project.
//
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      409   {object}  map[string]any
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.Create(c.Request().Context(), req.toInput(identity.UserID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, project)
}

// Update modifies an existing project.
//
// @Summary      Update project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]any
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, project)
}

// Delete removes a project and its stored images.
//
// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projectService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "project deleted", nil)
}

// AddImage uploads a gallery image and attaches it to the project. Expects
// multipart form data with an "image" file part.
//
// @Summary      Add project image
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id             path      string  true   "Project id"
// @Param        image          formData  file    true   "Image file"
// @Param        caption        formData  string  false  "Caption"
// @Param        display_order  formData  int     false  "Display order"
// @Param        is_primary     formData  bool    false  "Primary image"
// @Success      201  {object}  domain.ProjectImage
// @Failure      404  {object}  map[string]any
// @Router       /api/projects/{id}/images [post]
func (h *ProjectHandler) AddImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image file")
	}
	defer file.Close()

	displayOrder, _ := strconv.Atoi(c.FormValue("display_order"))
	input := ports.AddProjectImageInput{
		ProjectID:    c.Param("id"),
		Caption:      c.FormValue("caption"),
		DisplayOrder: displayOrder,
		IsPrimary:    c.FormValue("is_primary") == "true",
		Image: ports.ImageUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Body:        file,
		},
	}

	image, err := h.projectService.AddImage(c.Request().Context(), input)
	if err != nil {
		metrics.ImageUploadsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.ImageUploadsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusCreated, image)
}

// RemoveImage detaches a gallery image and deletes the stored object.
//
// @Summary      Remove project image
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string  true  "Project id"
// @Param        imageId  path  string  true  "Image id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/projects/{id}/images/{imageId} [delete]
func (h *ProjectHandler) RemoveImage(c echo.Context) error {
	if err := h.projectService.RemoveImage(c.Request().Context(), c.Param("id"), c.Param("imageId")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "image removed", nil)
}
