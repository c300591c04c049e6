package imagehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadSendsMultipartWithKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "id-card.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"url": "https://i.ibb.co/abc123/id-card.jpg",
				"delete_url": "https://ibb.co/abc123/deadbeef"
			}
		}`))
	}))
	defer server.Close()

	client := NewImgbbClientWithURL("test-key", server.URL)

	doc, err := client.Upload(context.Background(), strings.NewReader("fake image bytes"), "id-card.jpg", "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc123/id-card.jpg", doc.URL)
	assert.Equal(t, "https://ibb.co/abc123/deadbeef", doc.DeleteURL)
}

func TestUploadSurfacesHostError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "error": {"message": "Invalid API key"}}`))
	}))
	defer server.Close()

	client := NewImgbbClientWithURL("bad-key", server.URL)

	_, err := client.Upload(context.Background(), strings.NewReader("bytes"), "id.png", "image/png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}
