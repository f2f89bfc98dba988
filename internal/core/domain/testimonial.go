package domain

import "time"

// Testimonial is a client quote shown on the public site once published.
type Testimonial struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	ClientName     string    `json:"client_name" bson:"client_name"`
	ClientPosition string    `json:"client_position,omitempty" bson:"client_position,omitempty"`
	ClientCompany  string    `json:"client_company,omitempty" bson:"client_company,omitempty"`
	ClientAvatar   string    `json:"client_avatar,omitempty" bson:"client_avatar,omitempty"`
	Rating         int       `json:"rating" bson:"rating"`
	Text           string    `json:"testimonial_text" bson:"testimonial_text"`
	ProjectID      string    `json:"project_id,omitempty" bson:"project_id,omitempty"`
	IsFeatured     bool      `json:"is_featured" bson:"is_featured"`
	IsPublished    bool      `json:"is_published" bson:"is_published"`
	DisplayOrder   int       `json:"display_order" bson:"display_order"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
