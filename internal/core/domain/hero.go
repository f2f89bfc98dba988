package domain

import "time"

// HeroSection is a full-width banner attached to a site page.
type HeroSection struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Page            string    `json:"page" bson:"page"`
	BackgroundImage string    `json:"background_image,omitempty" bson:"background_image,omitempty"`
	StorageKey      string    `json:"storage_key,omitempty" bson:"storage_key,omitempty"`
	IsActive        bool      `json:"is_active" bson:"is_active"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
