package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	filestorage "github.com/SeakMengs/FontCatalog/internal/file_storage"
	"github.com/SeakMengs/FontCatalog/internal/util"
	"github.com/SeakMengs/FontCatalog/pkg/fontcatalog"
	"github.com/spf13/cobra"
)

const snippetObjectName = "fonts.snippet.js"

func newPublishCmd(opts *options) *cobra.Command {
	fuo := util.FileUploadOptions{}
	var prefix string

	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Upload the snippet and the font metadata of dir to object storage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			files, ok, err := scanOrReport(out, opts, fontDir(opts, args))
			if !ok || err != nil {
				return err
			}

			s3, err := filestorage.NewMinioClient(&opts.cfg.Minio)
			if err != nil {
				return fmt.Errorf("connecting to object storage: %w", err)
			}
			fuo.S3 = s3

			return publish(cmd.Context(), opts, files, prefix, &fuo, out)
		},
	}

	cmd.Flags().StringVar(&fuo.Bucket, "bucket", opts.cfg.Minio.BUCKET, "destination bucket, created when missing")
	cmd.Flags().StringVar(&fuo.DirectoryPath, "path", "catalogs", "object key prefix")
	cmd.Flags().BoolVar(&fuo.UniquePrefix, "unique", false, "prefix object names with a random id")
	cmd.Flags().StringVar(&prefix, "prefix", opts.cfg.Fonts.PUBLIC_PREFIX, "URL path prefix for the file field")

	return cmd
}

func publish(ctx context.Context, opts *options, files []string, prefix string, fuo *util.FileUploadOptions, out io.Writer) error {
	snippet, err := fontcatalog.RenderSnippet(files)
	if err != nil {
		return err
	}

	info, err := util.UploadBytesToS3(ctx, snippetObjectName, []byte(snippet), fuo)
	if err != nil {
		return err
	}
	opts.logger.Infow("Uploaded snippet", "bucket", info.Bucket, "key", info.Key, "size", info.Size)
	fmt.Fprintf(out, "Uploaded %s/%s\n", info.Bucket, info.Key)

	tmpDir, err := os.MkdirTemp("", "fontcatalog_publish_*")
	if err != nil {
		return fmt.Errorf("creating temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	metadataPath := filepath.Join(tmpDir, metadataObjectName(opts.cfg.Fonts.METADATA_PATH))
	if err := fontcatalog.WriteMetadataJSON(metadataPath, fontcatalog.BuildMetadata(files, prefix)); err != nil {
		return err
	}

	info, err = util.UploadFileToS3ByPath(ctx, metadataPath, fuo)
	if err != nil {
		return err
	}
	opts.logger.Infow("Uploaded font metadata", "bucket", info.Bucket, "key", info.Key, "size", info.Size)
	fmt.Fprintf(out, "Uploaded %s/%s\n", info.Bucket, info.Key)

	return nil
}

func metadataObjectName(metadataPath string) string {
	name := filepath.Base(metadataPath)
	if name == "." || name == string(filepath.Separator) {
		return fontcatalog.DefaultMetadataPath
	}
	return name
}
