package dataset

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// ObjectGetter is the part of *s3.Client the S3 source needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

func NewS3Source(client ObjectGetter, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

func (s *S3Source) Fetch(ctx context.Context, _ string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, errors.Wrapf(ErrFetch, "%s: %s (%s)", s.Location(), apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return nil, errors.Wrap(ErrFetch, err.Error())
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(ErrFetch, err.Error())
	}
	return b, nil
}

func (s *S3Source) Location() string {
	return "s3://" + s.bucket + "/" + s.key
}
