package objectstore

import (
	"bytes"
	"context"
	"fmt"

	appconfig "github.com/Avinash-0612/fhir-healthcare-lakehouse/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sirupsen/logrus"
)

// BronzeStore writes raw bundle documents to the bronze zone of the lake.
type BronzeStore interface {
	PutRawBundle(ctx context.Context, key string, data []byte) error
}

type s3BronzeStore struct {
	client *s3.Client
	bucket string
}

// NewS3BronzeStore builds an S3-backed bronze store. Endpoint, region and
// credentials come from the default AWS config chain, so MinIO and LocalStack
// work through AWS_ENDPOINT_URL.
func NewS3BronzeStore(ctx context.Context, cfg appconfig.S3Config) (BronzeStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.New(s3.Options{
		Region:       awsCfg.Region,
		Credentials:  awsCfg.Credentials,
		HTTPClient:   awsCfg.HTTPClient,
		BaseEndpoint: awsCfg.BaseEndpoint,
		UsePathStyle: cfg.UsePathStyle,
	})

	logrus.Infof("S3 bronze store initialized, bucket=%s", cfg.Bucket)

	return &s3BronzeStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *s3BronzeStore) PutRawBundle(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: awsString("application/fhir+json"),
		ACL:         types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload bundle to s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

func awsString(s string) *string { return &s }
