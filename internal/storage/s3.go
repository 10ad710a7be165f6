package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store uploads binaries to an S3-compatible bucket. Built for Cloudflare R2
// but any endpoint speaking the S3 API works. Objects are addressed through
// the bucket's public base URL, so the bucket must allow public reads.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ BlobStore = (*S3Store)(nil)

// NewS3Store initializes the R2 client using static credentials and custom endpoint.
func NewS3Store(accessKey, secretKey, accountID, bucketName, region, publicBaseURL string) (*S3Store, error) {
	if bucketName == "" {
		return nil, &ConfigError{
			Remediation: "no storage bucket configured; set R2_BUCKET_NAME to a public bucket in your R2 dashboard",
		}
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized R2 client")

	return &S3Store{
		client:  client,
		bucket:  bucketName,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, storedName string, contentType string, r io.Reader) (string, string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(storedName),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		var noBucket *s3types.NoSuchBucket
		if errors.As(err, &noBucket) {
			return "", "", &ConfigError{
				Remediation: fmt.Sprintf("storage bucket %q not found; create a public bucket with that name in your R2 dashboard", s.bucket),
				Err:         err,
			}
		}
		if strings.Contains(err.Error(), "AccessDenied") {
			return "", "", &ConfigError{
				Remediation: fmt.Sprintf("permission denied writing to bucket %q; check the access key's policy", s.bucket),
				Err:         err,
			}
		}
		return "", "", fmt.Errorf("put object %s: %w", storedName, err)
	}

	// Read-back confirmation before the share link goes out: R2 reads are
	// strongly consistent, so an object that cannot be headed did not land.
	ok, err := s.VerifyObjectExists(ctx, storedName)
	if err != nil {
		return "", "", fmt.Errorf("verify object %s: %w", storedName, err)
	}
	if !ok {
		return "", "", fmt.Errorf("object %s not visible after upload", storedName)
	}

	return storedName, s.baseURL + "/" + storedName, nil
}

// VerifyObjectExists checks if a given object key exists in the bucket.
// Returns true if the object exists, false if not, and an error if something went wrong.
func (s *S3Store) VerifyObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if errors.As(err, &nsk) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
