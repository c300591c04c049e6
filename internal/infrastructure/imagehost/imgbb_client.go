package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"unilagyard/internal/domain/service"
)

const defaultUploadURL = "https://api.imgbb.com/1/upload"

// ImgbbClient uploads binaries to the imgbb image-hosting API.
type ImgbbClient struct {
	apiKey     string
	uploadURL  string
	httpClient *http.Client
}

func NewImgbbClient(apiKey string) *ImgbbClient {
	return &ImgbbClient{
		apiKey:    apiKey,
		uploadURL: defaultUploadURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewImgbbClientWithURL is used by tests to point the client at a stub server.
func NewImgbbClientWithURL(apiKey, uploadURL string) *ImgbbClient {
	client := NewImgbbClient(apiKey)
	client.uploadURL = uploadURL
	return client
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL       string `json:"url"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *ImgbbClient) Upload(ctx context.Context, file io.Reader, filename, contentType string) (*service.HostedDocument, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file into form: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %v", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.uploadURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %v", err)
	}
	defer resp.Body.Close()

	var result imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %v", err)
	}

	if !result.Success {
		return nil, fmt.Errorf("image host rejected upload: %s", result.Error.Message)
	}

	return &service.HostedDocument{
		URL:       result.Data.URL,
		DeleteURL: result.Data.DeleteURL,
	}, nil
}
