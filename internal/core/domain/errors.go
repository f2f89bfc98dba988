package domain

import "errors"

// Authentication and account errors. Login failures collapse into
// ErrInvalidCredentials so the API never reveals whether an email exists.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrForbidden          = errors.New("access forbidden")
	ErrSelfDeletion       = errors.New("cannot delete own account")
)

// Content errors.
var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrSlugTaken           = errors.New("slug already in use")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrHeroNotFound        = errors.New("hero section not found")
	ErrInquiryNotFound     = errors.New("inquiry not found")
	ErrImageNotFound       = errors.New("image not found")
)
