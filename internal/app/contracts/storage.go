package contracts

import (
	"context"
	"io"
	"mime/multipart"
)

type Storage interface {
	// Configured reports whether the image-hosting backend is wired;
	// uploads against an unconfigured backend are a configuration
	// error, not a validation one.
	Configured() bool

	// UploadFile stores the file and returns the public object URL.
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader) (string, error)

	// OwnsURL reports whether the URL points at this backend; foreign
	// URLs are never deleted.
	OwnsURL(imageURL string) bool

	// RemoveByURL deletes the object the URL points at.
	RemoveByURL(ctx context.Context, imageURL string) error
}
