package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"stonex_server/lib"
	"stonex_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"golang.org/x/sync/errgroup"
)

// MediaFile is one upload taken from a multipart form
type MediaFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// MediaService proxies uploads and deletions to the image host
type MediaService struct {
	logger *gecho.Logger
	cfg    *structs.MediaConfig
	client *http.Client
	now    func() time.Time
}

func NewMediaService(logger *gecho.Logger, cfg *structs.Config) *MediaService {
	return &MediaService{
		logger: logger,
		cfg:    cfg.Media,
		client: &http.Client{Timeout: cfg.Media.Timeout},
		now:    time.Now,
	}
}

// CanUpload reports whether cloud name and upload preset are set
func (ms *MediaService) CanUpload() bool {
	return ms.cfg.CloudName != "" && ms.cfg.UploadPreset != ""
}

// CanDestroy reports whether signed deletion credentials are set
func (ms *MediaService) CanDestroy() bool {
	return ms.cfg.CloudName != "" && ms.cfg.ApiKey != "" && ms.cfg.ApiSecret != ""
}

func (ms *MediaService) endpoint(action string) string {
	return fmt.Sprintf("%s/%s/image/%s", strings.TrimRight(ms.cfg.BaseURL, "/"), ms.cfg.CloudName, action)
}

// Upload forwards a single file with the unsigned upload preset
func (ms *MediaService) Upload(ctx context.Context, filename string, file io.Reader) (*structs.UploadResult, error) {
	if !ms.CanUpload() {
		return nil, lib.ErrMediaNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}
	if err := writer.WriteField("upload_preset", ms.cfg.UploadPreset); err != nil {
		return nil, fmt.Errorf("failed to write upload preset: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ms.endpoint("upload"), &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result structs.UploadResult
	if err := ms.do(req, &result); err != nil {
		ms.logger.Warn("Media upload failed", gecho.Field("file", filename), gecho.Field("error", err))
		return nil, err
	}

	ms.logger.Debug("Media uploaded", gecho.Field("public_id", result.PublicID))
	return &result, nil
}

// UploadMany uploads every file concurrently. One failure fails the batch.
func (ms *MediaService) UploadMany(ctx context.Context, files []MediaFile) ([]structs.UploadResult, error) {
	if !ms.CanUpload() {
		return nil, lib.ErrMediaNotConfigured
	}

	results := make([]structs.UploadResult, len(files))
	g, gctx := errgroup.WithContext(ctx)

	for i, f := range files {
		g.Go(func() error {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", f.Name, err)
			}
			defer rc.Close()

			res, err := ms.Upload(gctx, f.Name, rc)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Destroy removes an image by public id. Missing credentials make it a no-op.
func (ms *MediaService) Destroy(ctx context.Context, publicID string) (*structs.DestroyResult, error) {
	if publicID == "" {
		return nil, lib.ErrMissingFields
	}
	if !ms.CanDestroy() {
		return &structs.DestroyResult{Skipped: true}, nil
	}

	timestamp := ms.now().Unix()
	payload, err := json.Marshal(map[string]any{
		"public_id": publicID,
		"signature": ms.sign(publicID, timestamp),
		"api_key":   ms.cfg.ApiKey,
		"timestamp": timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode destroy request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ms.endpoint("destroy"), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	result := map[string]any{}
	if err := ms.do(req, &result); err != nil {
		ms.logger.Warn("Media deletion failed", gecho.Field("public_id", publicID), gecho.Field("error", err))
		return nil, err
	}

	return &structs.DestroyResult{Result: result}, nil
}

// sign builds the sha1 signature the host expects for destroy calls
func (ms *MediaService) sign(publicID string, timestamp int64) string {
	sum := sha1.Sum(fmt.Appendf(nil, "public_id=%s&timestamp=%d%s", publicID, timestamp, ms.cfg.ApiSecret))
	return hex.EncodeToString(sum[:])
}

func (ms *MediaService) do(req *http.Request, out any) error {
	resp, err := ms.client.Do(req)
	if err != nil {
		return fmt.Errorf("media host request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read media host response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &lib.UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode media host response: %w", err)
	}
	return nil
}

// ExtractPublicID returns the last path segment of a hosted image url without its extension
func ExtractPublicID(url string) string {
	name := path.Base(url)
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}

// IsHostedImage reports whether url points at the image host
func IsHostedImage(url string) bool {
	return strings.Contains(url, "cloudinary.com")
}

// IsUpstreamError unwraps a media host failure
func IsUpstreamError(err error) (*lib.UpstreamError, bool) {
	var upstream *lib.UpstreamError
	if errors.As(err, &upstream) {
		return upstream, true
	}
	return nil, false
}
