package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

type createProjectRequest struct {
	Title          string     `json:"title" validate:"required,min=2"`
	Description    string     `json:"description,omitempty"`
	ClientName     string     `json:"client_name,omitempty"`
	Location       string     `json:"location,omitempty"`
	AreaSqft       float64    `json:"area_sqft,omitempty" validate:"omitempty,gt=0"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	CategoryID     string     `json:"category_id,omitempty"`
	Status         string     `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	Featured       bool       `json:"featured,omitempty"`
	ThumbnailURL   string     `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	DisplayOrder   int        `json:"display_order,omitempty"`
}

type updateProjectRequest struct {
	Title          *string    `json:"title,omitempty" validate:"omitempty,min=2"`
	Description    *string    `json:"description,omitempty"`
	ClientName     *string    `json:"client_name,omitempty"`
	Location       *string    `json:"location,omitempty"`
	AreaSqft       *float64   `json:"area_sqft,omitempty" validate:"omitempty,gt=0"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	CategoryID     *string    `json:"category_id,omitempty"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	Featured       *bool      `json:"featured,omitempty"`
	ThumbnailURL   *string    `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	DisplayOrder   *int       `json:"display_order,omitempty"`
}

func (r createProjectRequest) toInput(createdBy string) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Title:          r.Title,
		Description:    r.Description,
		ClientName:     r.ClientName,
		Location:       r.Location,
		AreaSqft:       r.AreaSqft,
		CompletionDate: r.CompletionDate,
		CategoryID:     r.CategoryID,
		Status:         r.Status,
		Featured:       r.Featured,
		ThumbnailURL:   r.ThumbnailURL,
		DisplayOrder:   r.DisplayOrder,
		CreatedBy:      createdBy,
	}
}

func (r updateProjectRequest) toInput() ports.UpdateProjectInput {
	return ports.UpdateProjectInput{
		Title:          r.Title,
		Description:    r.Description,
		ClientName:     r.ClientName,
		Location:       r.Location,
		AreaSqft:       r.AreaSqft,
		CompletionDate: r.CompletionDate,
		CategoryID:     r.CategoryID,
		Status:         r.Status,
		Featured:       r.Featured,
		ThumbnailURL:   r.ThumbnailURL,
		DisplayOrder:   r.DisplayOrder,
	}
}

// listProjectsFilter parses the listing query parameters. Unknown or
// malformed values fall back to defaults rather than erroring.
func listProjectsFilter(c echo.Context) ports.ListProjectsFilter {
	filter := ports.ListProjectsFilter{
		Status:     c.QueryParam("status"),
		CategoryID: c.QueryParam("category"),
	}
	if v := c.QueryParam("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return filter
}
