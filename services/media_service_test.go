package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"stonex_server/lib"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMedia(t *testing.T, handler http.HandlerFunc) *MediaService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.Media.BaseURL = srv.URL
	cfg.Media.CloudName = "demo"
	cfg.Media.UploadPreset = "unsigned"
	cfg.Media.ApiKey = "key"
	cfg.Media.ApiSecret = "secret"

	ms := NewMediaService(testLogger(), cfg)
	ms.now = func() time.Time { return time.Unix(1700000000, 0) }
	return ms
}

func TestUploadForwardsPreset(t *testing.T) {
	ms := newTestMedia(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/upload", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "unsigned", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		body, _ := io.ReadAll(file)
		assert.Equal(t, "slab.jpg", header.Filename)
		assert.Equal(t, "image-bytes", string(body))

		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/slab.jpg","public_id":"slab","width":10}`)
	})

	res, err := ms.Upload(context.Background(), "slab.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/slab.jpg", res.SecureURL)
	assert.Equal(t, "slab", res.PublicID)
}

func TestUploadUpstreamFailure(t *testing.T) {
	ms := newTestMedia(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Upload preset not found"}}`)
	})

	_, err := ms.Upload(context.Background(), "slab.jpg", strings.NewReader("x"))
	upstream, ok := IsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
	assert.Contains(t, upstream.Body, "Upload preset not found")
}

func TestUploadNotConfigured(t *testing.T) {
	ms := NewMediaService(testLogger(), testConfig())

	_, err := ms.Upload(context.Background(), "slab.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, lib.ErrMediaNotConfigured)

	_, err = ms.UploadMany(context.Background(), nil)
	assert.ErrorIs(t, err, lib.ErrMediaNotConfigured)
}

func memoryFile(name, content string) MediaFile {
	return MediaFile{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestUploadManyKeepsOrder(t *testing.T) {
	var calls atomic.Int32
	ms := newTestMedia(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		id := strings.TrimSuffix(header.Filename, ".jpg")
		fmt.Fprintf(w, `{"secure_url":"https://res.cloudinary.com/demo/%s.jpg","public_id":"%s"}`, id, id)
	})

	results, err := ms.UploadMany(context.Background(), []MediaFile{
		memoryFile("one.jpg", "1"),
		memoryFile("two.jpg", "2"),
		memoryFile("three.jpg", "3"),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "one", results[0].PublicID)
	assert.Equal(t, "two", results[1].PublicID)
	assert.Equal(t, "three", results[2].PublicID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestUploadManyFailsWhenOneFails(t *testing.T) {
	ms := newTestMedia(t, func(w http.ResponseWriter, r *http.Request) {
		_, header, _ := r.FormFile("file")
		if header != nil && header.Filename == "bad.jpg" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "bad file")
			return
		}
		fmt.Fprint(w, `{"secure_url":"u","public_id":"p"}`)
	})

	_, err := ms.UploadMany(context.Background(), []MediaFile{
		memoryFile("good.jpg", "1"),
		memoryFile("bad.jpg", "2"),
	})
	require.Error(t, err)
}

func TestDestroySignsRequest(t *testing.T) {
	ms := newTestMedia(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/destroy", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		sum := sha1.Sum([]byte("public_id=folder/slab&timestamp=1700000000secret"))
		assert.Equal(t, "folder/slab", body["public_id"])
		assert.Equal(t, "key", body["api_key"])
		assert.Equal(t, float64(1700000000), body["timestamp"])
		assert.Equal(t, hex.EncodeToString(sum[:]), body["signature"])

		fmt.Fprint(w, `{"result":"ok"}`)
	})

	res, err := ms.Destroy(context.Background(), "folder/slab")
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, "ok", res.Result["result"])
}

func TestDestroyWithoutCredentialsIsNoop(t *testing.T) {
	ms := NewMediaService(testLogger(), testConfig())

	res, err := ms.Destroy(context.Background(), "slab")
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	_, err = ms.Destroy(context.Background(), "")
	assert.ErrorIs(t, err, lib.ErrMissingFields)
}

func TestExtractPublicID(t *testing.T) {
	assert.Equal(t, "abc123", ExtractPublicID("https://res.cloudinary.com/demo/image/upload/v1712/abc123.jpg"))
	assert.Equal(t, "slab", ExtractPublicID("slab.tar.gz"))
	assert.Equal(t, "noext", ExtractPublicID("https://example.com/noext"))
	assert.True(t, IsHostedImage("https://res.cloudinary.com/demo/x.jpg"))
	assert.False(t, IsHostedImage("/granite/x.jpg"))
}
