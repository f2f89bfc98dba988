package domain

import "time"

// ProjectStatus represents the publication state of a portfolio project.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectPublished ProjectStatus = "published"
	ProjectArchived  ProjectStatus = "archived"
)

// ProjectImage is a single gallery image embedded in a project document.
// StorageKey is the opaque object-storage id used for deletion.
type ProjectImage struct {
	ID           string    `json:"id" bson:"id"`
	ImageURL     string    `json:"image_url" bson:"image_url"`
	StorageKey   string    `json:"storage_key,omitempty" bson:"storage_key,omitempty"`
	Caption      string    `json:"caption,omitempty" bson:"caption,omitempty"`
	DisplayOrder int       `json:"display_order" bson:"display_order"`
	IsPrimary    bool      `json:"is_primary" bson:"is_primary"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Project is a portfolio entry. Non-admin callers only ever see published
// projects; draft and archived entries behave as if they do not exist.
type Project struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	Title          string         `json:"title" bson:"title"`
	Slug           string         `json:"slug" bson:"slug"`
	Description    string         `json:"description,omitempty" bson:"description,omitempty"`
	ClientName     string         `json:"client_name,omitempty" bson:"client_name,omitempty"`
	Location       string         `json:"location,omitempty" bson:"location,omitempty"`
	AreaSqft       float64        `json:"area_sqft,omitempty" bson:"area_sqft,omitempty"`
	CompletionDate *time.Time     `json:"completion_date,omitempty" bson:"completion_date,omitempty"`
	CategoryID     string         `json:"category_id,omitempty" bson:"category_id,omitempty"`
	Status         ProjectStatus  `json:"status" bson:"status"`
	Featured       bool           `json:"featured" bson:"featured"`
	ThumbnailURL   string         `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty"`
	Images         []ProjectImage `json:"images" bson:"images"`
	DisplayOrder   int            `json:"display_order" bson:"display_order"`
	CreatedBy      string         `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// VisibleTo reports whether the project may be served to the given identity.
func (p *Project) VisibleTo(identity Identity) bool {
	return p.Status == ProjectPublished || identity.IsAdmin()
}
