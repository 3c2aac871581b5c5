package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store archives snapshots in an S3 bucket under a key prefix. Metadata
// (sequence, capture time) rides along as object metadata so List and
// Cleanup don't need to fetch bodies.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates an S3-backed snapshot store.
//
// Parameters:
//   - client: AWS S3 client from aws-sdk-go-v2
//   - bucket: S3 bucket name
//   - prefix: key prefix for snapshots (e.g. "arbor/snapshots/")
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Save implements Store.
func (s *S3Store) Save(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = newID()
	}
	if rec.TakenAt.IsZero() {
		rec.TakenAt = time.Now().UTC()
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + rec.ID),
		Body:        bytes.NewReader(rec.Body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"seq":      strconv.FormatUint(rec.Seq, 10),
			"taken-at": rec.TakenAt.Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return fmt.Errorf("snapshot: s3 put %s: %w", rec.ID, err)
	}
	return nil
}

// Get implements Store.
func (s *S3Store) Get(ctx context.Context, id string) (*Record, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + id),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("snapshot: s3 get %s: %w", id, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("snapshot: s3 read %s: %w", id, err)
	}

	rec := &Record{ID: id, Body: body}
	if v, ok := out.Metadata["seq"]; ok {
		rec.Seq, _ = strconv.ParseUint(v, 10, 64)
	}
	if v, ok := out.Metadata["taken-at"]; ok {
		rec.TakenAt, _ = time.Parse(time.RFC3339Nano, v)
	}
	return rec, nil
}

// List implements Store. Bodies are not fetched; use Get for the content.
func (s *S3Store) List(ctx context.Context, limit int) ([]*Record, error) {
	var out []*Record

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("snapshot: s3 list: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			rec := &Record{ID: (*obj.Key)[len(s.prefix):]}
			if obj.LastModified != nil {
				rec.TakenAt = *obj.LastModified
			}
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TakenAt.After(out[j].TakenAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Cleanup implements Store.
func (s *S3Store) Cleanup(ctx context.Context, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("snapshot: s3 list: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || obj.LastModified == nil {
				continue
			}
			if obj.LastModified.Before(cutoff) {
				_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
					Bucket: aws.String(s.bucket),
					Key:    obj.Key,
				})
				if err != nil {
					return fmt.Errorf("snapshot: s3 delete %s: %w", *obj.Key, err)
				}
			}
		}
	}
	return nil
}
