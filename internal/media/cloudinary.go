package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *zap.Logger
}

// NewCloudinaryUploader builds the process-lifetime upload client from a
// CLOUDINARY_URL style connection string.
func NewCloudinaryUploader(cloudinaryURL, folder string, logger ...*zap.Logger) (*CloudinaryUploader, error) {
	l := zap.L().Named("media.cloudinary")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("media.cloudinary")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}

	return &CloudinaryUploader{cld: cld, folder: folder, logger: l}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file *File) (string, error) {
	publicID := fmt.Sprintf("%d-%s",
		time.Now().UnixMilli(),
		strings.TrimSuffix(file.Name, filepath.Ext(file.Name)),
	)

	resp, err := u.cld.Upload.Upload(ctx, file.Reader, uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       publicID,
		AllowedFormats: api.CldAPIArray{"jpg", "png", "jpeg"},
	})
	if err != nil {
		u.logger.Error("profile image upload failed",
			zap.String("file", file.Name),
			zap.Error(err),
		)
		return "", err
	}

	u.logger.Debug("profile image uploaded",
		zap.String("file", file.Name),
		zap.String("public_id", resp.PublicID),
	)
	return resp.SecureURL, nil
}
