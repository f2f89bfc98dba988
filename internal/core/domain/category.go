package domain

import "time"

// Category groups projects (e.g. residential, office). Name and slug are
// unique; uniqueness is enforced by the storage layer at write time.
type Category struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Slug         string    `json:"slug" bson:"slug"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	DisplayOrder int       `json:"display_order" bson:"display_order"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
