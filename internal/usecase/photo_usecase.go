package usecase

import (
	"context"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/service"
)

// UploadPhotoInput is a single uploaded image.
type UploadPhotoInput struct {
	Filename string
	Data     []byte
}

// UploadPhotoOutput carries the reference to store in a profile photo slot.
type UploadPhotoOutput struct {
	Reference   string
	Key         string
	ContentType string
	Size        int
	Checksum    string // hex SHA256 of the stored bytes
}

// PhotoUsecase stores and serves profile photos.
type PhotoUsecase interface {
	UploadPhoto(ctx context.Context, principal entity.Principal, input *UploadPhotoInput) (*UploadPhotoOutput, error)
	// OpenPhoto opens a photo by the path following the public prefix of its reference.
	OpenPhoto(ctx context.Context, name string) (*service.StoredPhoto, error)
}
