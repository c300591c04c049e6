package service

import (
	"context"
	"io"
)

type UploadResult struct {
	URL        string
	ObjectName string
	Size       int64
}

type FileUploadService interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string, isPublic bool) (*UploadResult, error)
	DeleteFile(ctx context.Context, objectName string) error
	Close() error
}

// HostedDocument is the result of pushing a binary to an external image host.
type HostedDocument struct {
	URL       string
	DeleteURL string
}

// DocumentUploader uploads a binary to an external host and returns a
// retrievable URL. Used by the seller verification flow.
type DocumentUploader interface {
	Upload(ctx context.Context, file io.Reader, filename, contentType string) (*HostedDocument, error)
}
