package aws

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
)

// putObjectAPI é o subconjunto do cliente S3 usado pelo publisher.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher envia relatórios exportados para um bucket S3.
type S3Publisher struct {
	bucket  string
	prefix  string
	profile string
	region  string

	mu     sync.Mutex
	client putObjectAPI
}

// NewS3Publisher cria um publisher para o bucket informado. profile e region são opcionais;
// vazios, valem as credenciais e a região padrão do SDK.
func NewS3Publisher(bucket, prefix, profile, region string) repository.ReportPublisher {
	return &S3Publisher{
		bucket:  bucket,
		prefix:  prefix,
		profile: profile,
		region:  region,
	}
}

func (p *S3Publisher) getClient(ctx context.Context) (putObjectAPI, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	var opts []func(*config.LoadOptions) error
	if p.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(p.profile))
	}
	if p.region != "" {
		opts = append(opts, config.WithRegion(p.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %q: %w", p.profile, err)
	}

	p.client = s3.NewFromConfig(cfg)
	return p.client, nil
}

// Publish envia o arquivo e retorna sua localização no formato s3://bucket/key.
func (p *S3Publisher) Publish(ctx context.Context, localPath string) (string, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return "", err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report %s: %w", localPath, err)
	}
	defer file.Close()

	key := objectKey(p.prefix, localPath)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s to bucket %s: %w", filepath.Base(localPath), p.bucket, err)
	}

	return fmt.Sprintf("s3://%s/%s", p.bucket, key), nil
}

func objectKey(prefix, localPath string) string {
	prefix = strings.Trim(prefix, "/")
	name := filepath.Base(localPath)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func contentType(localPath string) string {
	switch strings.ToLower(filepath.Ext(localPath)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
