package cardart

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/heartmarshall/tarot-backend/internal/config"
)

type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Resolver turns a card's image reference into a URL the client can load.
// With a bucket it returns short-lived presigned GET URLs (S3 or any
// S3-compatible store such as R2); otherwise it joins the CDN base URL.
type Resolver struct {
	presign presigner
	bucket  string
	ttl     time.Duration
	cdnBase string
	log     *slog.Logger
}

// NewResolver builds a Resolver from configuration.
func NewResolver(ctx context.Context, cfg config.CardArtConfig, logger *slog.Logger) (*Resolver, error) {
	r := &Resolver{
		cdnBase: strings.TrimRight(cfg.CDNBaseURL, "/"),
		ttl:     cfg.PresignTTL,
		log:     logger.With("adapter", "cardart"),
	}
	if !cfg.UsesBucket() {
		return r, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cardart: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	r.presign = s3.NewPresignClient(client)
	r.bucket = cfg.Bucket
	return r, nil
}

// URL returns the image URL for imageRef.
func (r *Resolver) URL(ctx context.Context, imageRef string) (string, error) {
	key := strings.TrimLeft(imageRef, "/")

	if r.presign == nil {
		return r.cdnBase + "/" + key, nil
	}

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		r.log.WarnContext(ctx, "presign failed", slog.String("key", key), slog.String("error", err.Error()))
		return "", fmt.Errorf("cardart: presign %s: %w", key, err)
	}
	return req.URL, nil
}
