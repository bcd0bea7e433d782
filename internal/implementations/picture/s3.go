package picture

import (
	"blog/internal/core/domain/picture"
	"blog/internal/core/domain/user"
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3 struct {
	client s3API
	bucket string
	prefix string
}

func NewS3(client *s3.Client, bucket string, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3) Save(ctx context.Context, p picture.Picture) (user.ImageFile, error) {
	name := newName(p.Format)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(name)),
		Body:        bytes.NewReader(p.Data),
		ContentType: aws.String(p.Format.ContentType()),
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *S3) Delete(ctx context.Context, name user.ImageFile) error {
	if !isManaged(name) {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	return err
}

func (s *S3) key(name user.ImageFile) string {
	return s.prefix + string(name)
}
