package filestorage

import (
	"errors"

	"github.com/SeakMengs/FontCatalog/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrMissingCredentials = errors.New("minio access key and secret key are required")

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	if cfg.ACCESS_KEY == "" || cfg.SECRET_KEY == "" {
		return nil, ErrMissingCredentials
	}

	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}
