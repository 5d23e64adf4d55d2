package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"bakery/config"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
	"bakery/internal/usecase"
	"bakery/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	photoKeyPrefix      = "photos"
	defaultMaxPhotoSize = 5 << 20
	defaultPublicPath   = "/photos"
)

// acceptedPhotoTypes maps sniffed MIME types to the extension used in storage keys.
var acceptedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// photoService implements the PhotoUsecase interface.
type photoService struct {
	storage    service.PhotoStorage
	maxSize    int64
	publicPath string
	logger     *slog.Logger
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	Storage service.PhotoStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) (usecase.PhotoUsecase, error) {
	maxSize := int64(defaultMaxPhotoSize)
	publicPath := defaultPublicPath

	if params.Config != nil && params.Config.Storage != nil {
		if raw := strings.TrimSpace(params.Config.Storage.MaxPhotoSize); raw != "" {
			parsed, err := bytes.Parse(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid storage.maxPhotoSize %q", raw)
			}
			maxSize = parsed
		}
		if params.Config.Storage.PublicPath != "" {
			publicPath = strings.TrimRight(params.Config.Storage.PublicPath, "/")
		}
	}

	return &photoService{
		storage:    params.Storage,
		maxSize:    maxSize,
		publicPath: publicPath,
		logger:     params.Logger,
	}, nil
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadPhoto stores one image for the caller and returns the reference to put in a photo slot.
func (srv *photoService) UploadPhoto(ctx context.Context, principal entity.Principal, input *usecase.UploadPhotoInput) (*usecase.UploadPhotoOutput, error) {
	if len(input.Data) == 0 {
		return nil, errors.WithStack(domainerrors.ErrMissingFields.WithDetails("A photo file is required"))
	}
	if int64(len(input.Data)) > srv.maxSize {
		return nil, errors.WithStack(domainerrors.ErrPhotoTooLarge.WithDetails(
			fmt.Sprintf("photo is %s, the limit is %s", bytes.Format(int64(len(input.Data))), bytes.Format(srv.maxSize))))
	}

	contentType := mimetype.Detect(input.Data).String()
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	ext, ok := acceptedPhotoTypes[contentType]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnsupportedPhotoType.WithDetails(
			fmt.Sprintf("%s has type %s", input.Filename, contentType)))
	}

	key := path.Join(photoKeyPrefix, principal.UserID.String(), uuid.NewString()+ext)
	if err := srv.storage.Save(ctx, key, contentType, input.Data); err != nil {
		return nil, errors.Wrap(err, "failed to store photo")
	}

	checksum := util.Checksum(input.Data)
	srv.log(ctx).Info("Photo uploaded",
		slog.Any("userID", principal.UserID),
		slog.String("key", key),
		slog.Int("size", len(input.Data)),
		slog.String("sha256", checksum),
	)

	return &usecase.UploadPhotoOutput{
		Reference:   srv.publicPath + "/" + strings.TrimPrefix(key, photoKeyPrefix+"/"),
		Key:         key,
		ContentType: contentType,
		Size:        len(input.Data),
		Checksum:    checksum,
	}, nil
}

// OpenPhoto opens a stored photo by the name used in its public reference.
// Names that are not already clean relative paths are not found.
func (srv *photoService) OpenPhoto(ctx context.Context, name string) (*service.StoredPhoto, error) {
	if name == "" || path.Clean("/" + name)[1:] != name {
		return nil, errors.WithStack(domainerrors.ErrNotFound)
	}
	key := photoKeyPrefix + "/" + name

	photo, err := srv.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to open photo")
	}

	return photo, nil
}
