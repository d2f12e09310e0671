package util

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

func createBucketIfNotExists(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

type FileUploadOptions struct {
	// Add a prefix to the file name
	// For example, if the file name is "font_metadata.json" and the prefix is "catalogs",
	// the resulting name will be "catalogs/font_metadata.json"
	DirectoryPath string
	UniquePrefix  bool
	Bucket        string
	S3            *minio.Client
}

// uploads in-memory content to S3 under name
func UploadBytesToS3(ctx context.Context, name string, data []byte, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(ctx, fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	objectName, err := PrepareObjectName(name, fuo)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	info, err := fuo.S3.PutObject(
		ctx,
		fuo.Bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: DetectContentType(name, data),
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

// uploads a file from a local path to S3
func UploadFileToS3ByPath(ctx context.Context, filePath string, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(ctx, fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	objectName, err := PrepareObjectName(filepath.Base(filePath), fuo)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	info, err := fuo.S3.FPutObject(
		ctx,
		fuo.Bucket,
		objectName,
		filePath,
		minio.PutObjectOptions{
			ContentType: DetectContentType(filePath, nil),
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

// Generates the final object name with uniqueness and prefix.
// Object keys always use forward slashes.
func PrepareObjectName(originalName string, fuo *FileUploadOptions) (string, error) {
	name := originalName

	if fuo == nil {
		return name, nil
	}

	if fuo.UniquePrefix {
		prefixed, err := AddUniquePrefixToFileName(originalName)
		if err != nil {
			return "", err
		}
		name = prefixed
	}

	if fuo.DirectoryPath != "" {
		name = path.Join(fuo.DirectoryPath, name)
	}

	return name, nil
}

// Extension lookup first, then sniffing data when given
func DetectContentType(name string, data []byte) string {
	if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
		return contentType
	}

	if len(data) > 0 {
		return http.DetectContentType(data)
	}

	return "application/octet-stream"
}
