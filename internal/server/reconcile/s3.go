package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures the object storage client. BaseEndpoint may point at
// MinIO or any other S3-compatible service.
type S3Options struct {
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

// S3Recorder stores each incident as a JSON object under
// incidents/YYYY/MM/DD/<idempotency key>.json.
type S3Recorder struct {
	client objectPutter
	bucket string
}

func NewS3Recorder(ctx context.Context, opts S3Options) (*S3Recorder, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Recorder{client: client, bucket: opts.Bucket}, nil
}

// IncidentKey returns the object key for inc.
func IncidentKey(inc Incident) string {
	d := inc.DetectedAt.UTC()
	return fmt.Sprintf("incidents/%04d/%02d/%02d/%s.json", d.Year(), d.Month(), d.Day(), inc.IdempotencyKey)
}

func (r *S3Recorder) Record(ctx context.Context, inc Incident) error {
	body, err := json.Marshal(inc)
	if err != nil {
		return fmt.Errorf("encode incident: %w", err)
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(IncidentKey(inc)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put incident: %w", err)
	}
	return nil
}
