// Package receipts arquiva comprovantes em PDF no S3.
package receipts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/starkbank-go/pkg/config"
	"github.com/raywall/starkbank-go/pkg/secrets"
)

// ErrEmptyContent indica um comprovante sem bytes.
var ErrEmptyContent = errors.New("receipts: empty content")

// S3Uploader interface para Mock
type S3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver grava PDFs em s3://bucket/prefix/resource/id.pdf.
type Archiver struct {
	client S3Uploader
	bucket string
	prefix string
}

// New cria um Archiver sobre um cliente S3 já construído.
func New(client S3Uploader, cfg config.ReceiptsConf) *Archiver {
	return &Archiver{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}
}

// NewFromConfig cria o cliente S3 a partir da config AWS padrão na região
// configurada.
func NewFromConfig(ctx context.Context, cfg config.ReceiptsConf) (*Archiver, error) {
	awsCfg, err := secrets.AWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}
	return New(s3.NewFromConfig(awsCfg), cfg), nil
}

// Key devolve a chave do objeto para o comprovante.
func (a *Archiver) Key(resource, id string) string {
	return path.Join(a.prefix, resource, id+".pdf")
}

// Archive envia o PDF e devolve a URI s3:// do objeto gravado.
func (a *Archiver) Archive(ctx context.Context, resource, id string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyContent
	}
	key := a.Key(resource, id)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("application/pdf"),
		Metadata: map[string]string{
			"resource": resource,
			"id":       id,
		},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar comprovante para o S3: %w", err)
	}
	return "s3://" + a.bucket + "/" + key, nil
}
