package checkout

import (
	"bytes"
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ReceiptStore keeps payment screenshots.
type ReceiptStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// Receipt is one stored screenshot.
type Receipt struct {
	ContentType string
	Body        []byte
}

// MemoryReceipts keeps receipts in process memory.
type MemoryReceipts struct {
	mu       sync.RWMutex
	receipts map[string]Receipt
}

// NewMemoryReceipts returns an empty in-memory receipt store.
func NewMemoryReceipts() *MemoryReceipts {
	return &MemoryReceipts{receipts: make(map[string]Receipt)}
}

func (m *MemoryReceipts) Put(ctx context.Context, key, contentType string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts[key] = Receipt{ContentType: contentType, Body: append([]byte(nil), body...)}
	return nil
}

// Get returns the receipt stored under key.
func (m *MemoryReceipts) Get(key string) (Receipt, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.receipts[key]
	return r, ok
}

// PutObjectAPI is the slice of the S3 client used by S3Receipts.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Receipts uploads receipts to a bucket.
type S3Receipts struct {
	client PutObjectAPI
	bucket string
}

// NewS3Receipts wraps an S3 client.
func NewS3Receipts(client PutObjectAPI, bucket string) *S3Receipts {
	return &S3Receipts{client: client, bucket: bucket}
}

// DialS3Receipts loads the default AWS config (env, shared files, IMDS)
// and returns a store for bucket. AWS_ENDPOINT_URL points it at LocalStack.
func DialS3Receipts(ctx context.Context, bucket string) (*S3Receipts, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) { o.UsePathStyle = true })
	return NewS3Receipts(client, bucket), nil
}

func (r *S3Receipts) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}
