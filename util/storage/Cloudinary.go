package storage

import (
	"context"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/wodnd0131/kiwes-api/config"
)

const (
	ProfileImageFolder  = "profileimg"
	ClubThumbnailFolder = "thumbnail"
)

type Cloudinary struct {
	CLD *cloudinary.Cloudinary
}

func NewCloudinary(cfg *config.Config) *Cloudinary {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	return &Cloudinary{CLD: cld}
}

func (c *Cloudinary) UploadImage(ctx context.Context, filePath string, folder string) (string, error) {
	resp, err := c.CLD.Upload.Upload(ctx, filePath, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// ImageURL builds the delivery URL for a stored asset reference.
func (c *Cloudinary) ImageURL(folder, publicID string) (string, error) {
	img, err := c.CLD.Image(folder + "/" + publicID)
	if err != nil {
		return "", err
	}
	return img.String()
}
