// Package archive exports recorded sessions to S3 as raw DIS streams:
// the session's PDUs concatenated in arrival order, readable by any tool
// that walks PDUs by their header length.
package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/internal/telemetry"
	"github.com/marmos91/opendis/pkg/metrics"
	"github.com/marmos91/opendis/pkg/recorder"
)

// Extension is the object suffix of an exported session.
const Extension = ".dis"

// ErrNoBucket is returned when no bucket is configured.
var ErrNoBucket = errors.New("archive: bucket is required")

// Config holds the S3 destination.
type Config struct {
	Bucket string

	// Prefix is prepended to object keys, e.g. "sessions/".
	Prefix string

	// Region is optional; the SDK default chain applies when empty.
	Region string

	// Endpoint overrides the S3 endpoint for S3-compatible services.
	Endpoint string

	// PathStyle forces path-style addressing, required by LocalStack and MinIO.
	PathStyle bool

	// AccessKeyID and SecretAccessKey select static credentials. When
	// empty the SDK default credential chain is used.
	AccessKeyID     string
	SecretAccessKey string
}

// ObjectPutter is the subset of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// SessionSource reads recorded sessions. *recorder.Store implements it.
type SessionSource interface {
	Session(ctx context.Context, id string) (recorder.SessionInfo, error)
	Iterate(ctx context.Context, id string, fn func(recorder.Record) error) error
}

// Result describes a finished export.
type Result struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	PDUs   int    `json:"pdus"`
	Bytes  int64  `json:"bytes"`
}

// URI returns the s3:// location of the object.
func (r Result) URI() string { return "s3://" + r.Bucket + "/" + r.Key }

// Exporter uploads sessions.
type Exporter struct {
	client  ObjectPutter
	bucket  string
	prefix  string
	metrics metrics.ArchiveMetrics
}

// New returns an Exporter using an existing client. m may be nil.
func New(client ObjectPutter, cfg Config, m metrics.ArchiveMetrics) (*Exporter, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}
	return &Exporter{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix, metrics: m}, nil
}

// NewFromConfig builds an S3 client from cfg and returns an Exporter.
func NewFromConfig(ctx context.Context, cfg Config, m metrics.ArchiveMetrics) (*Exporter, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(client, cfg, m)
}

// NewClient builds an S3 client for cfg.
func NewClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	}), nil
}

// Key returns the object key for a session id.
func (e *Exporter) Key(id string) string {
	prefix := e.prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + id + Extension
}

// Export uploads the session as one object.
func (e *Exporter) Export(ctx context.Context, src SessionSource, id string) (Result, error) {
	start := time.Now()
	key := e.Key(id)
	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanExport)
	defer span.End()
	telemetry.SetAttributes(ctx, telemetry.Session(id), telemetry.Bucket(e.bucket), telemetry.StorageKey(key))

	res, err := e.export(ctx, src, id, key)
	status := "success"
	if err != nil {
		status = "error"
		telemetry.RecordError(ctx, err)
	}
	if e.metrics != nil {
		e.metrics.RecordExport(status, res.Bytes, time.Since(start))
	}
	if err != nil {
		return res, err
	}

	logger.Info("Session exported",
		logger.Session(id), logger.Bucket(e.bucket), logger.Key(key),
		logger.Count(res.PDUs), logger.DurationMs(start))
	return res, nil
}

func (e *Exporter) export(ctx context.Context, src SessionSource, id, key string) (Result, error) {
	res := Result{Bucket: e.bucket, Key: key}

	info, err := src.Session(ctx, id)
	if err != nil {
		return res, err
	}

	var buf bytes.Buffer
	buf.Grow(int(info.Bytes))
	err = src.Iterate(ctx, id, func(r recorder.Record) error {
		buf.Write(r.Raw)
		res.PDUs++
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("read session %s: %w", id, err)
	}
	res.Bytes = int64(buf.Len())

	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(e.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(res.Bytes),
		ContentType:   aws.String("application/octet-stream"),
		Metadata: map[string]string{
			"session-name": info.Name,
			"pdus":         strconv.Itoa(res.PDUs),
			"started-at":   info.StartedAt.Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return res, fmt.Errorf("s3 put object %s: %w", key, err)
	}
	return res, nil
}
