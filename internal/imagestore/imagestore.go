package imagestore

import (
	"context"

	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Folders the service uploads into. Deletion works off the stored PublicID,
// so the folder only matters at upload time.
const (
	FolderProfileImages = "profile_images"
	FolderCoverImages   = "cover_images"
	FolderPostImages    = "post_images"
)

// Store is the external object store holding uploaded media. Upload returns
// an owned handle; Delete is keyed by that handle.
type Store interface {
	Upload(ctx context.Context, file string, folder string) (*model.Image, error)
	Delete(ctx context.Context, img model.Image) error
}

type cloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// New builds a Store from the CLOUDINARY_URL environment variable.
func New() (Store, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, err
	}
	return &cloudinaryStore{
		cld: cld,
	}, nil
}

func (s *cloudinaryStore) Upload(ctx context.Context, file string, folder string) (*model.Image, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, err
	}

	return &model.Image{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

func (s *cloudinaryStore) Delete(ctx context.Context, img model.Image) error {
	if img.PublicID == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: img.PublicID})
	return err
}
