package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"oci_kiosk/model"
)

// Store wraps the S3 client together with the bucket and the CDN base URL
// that public media links are built from.
type Store struct {
	client  *s3.Client
	bucket  string
	cdnBase string
}

func New(ctx context.Context, region, bucket, cdnBase string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Store{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		cdnBase: strings.TrimRight(cdnBase, "/"),
	}, nil
}

// FolderForMIME decides the bucket folder from the content type.
func FolderForMIME(mime string) string {
	switch {
	case strings.HasPrefix(mime, "video/"):
		return "videos"
	case strings.HasPrefix(mime, "image/"):
		return "images"
	case mime == "application/pdf":
		return "pdfs"
	case mime == "text/vtt":
		return "subtitles"
	default:
		return "others"
	}
}

// ResolveFolder picks the bucket folder for an upload. An explicit request
// must name one of the known prefixes; empty falls back to the MIME mapping.
func ResolveFolder(requested, mime string) (string, bool) {
	if requested == "" {
		return FolderForMIME(mime), true
	}
	switch requested {
	case "videos", "images", "pdfs", "subtitles", "others":
		return requested, true
	}
	return "", false
}

// Upload stores body under folder/<unix-millis>-<filename> and returns the
// key plus the public URL.
func (s *Store) Upload(ctx context.Context, folder, filename, mime string, body io.Reader) (model.Media, error) {
	key := fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(mime),
	})
	if err != nil {
		return model.Media{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return model.Media{S3Key: key, S3URL: s.cdnBase + "/" + key}, nil
}

// Get streams an object, used to serve subtitle tracks.
func (s *Store) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("get object %s: %w", key, err)
	}
	contentType := aws.ToString(out.ContentType)
	return out.Body, contentType, nil
}

// Delete removes an object, logging rather than failing: a missing media file
// must never block a CMS delete.
func (s *Store) Delete(ctx context.Context, key string) {
	if key == "" {
		return
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("delete from S3 %s: %v", key, err)
	}
}
