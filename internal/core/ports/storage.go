package ports

import (
	"context"
	"io"
)

// ImageStore abstracts the object-storage provider holding uploaded images.
// Keys are opaque ids chosen by the caller; Upload returns the public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ImageUpload carries one multipart file on its way to the ImageStore.
type ImageUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}
