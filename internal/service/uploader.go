package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"portfolio-admin/pkg/config"
	"portfolio-admin/pkg/metrics"
)

// MediaUploader proxies a single file to the external media host and
// returns the public URL it minted. One stateless round trip per call:
// no retry, no chunking, no local caching.
type MediaUploader struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
	logger       *zap.Logger
}

func NewMediaUploader(cfg config.MediaConfig, logger *zap.Logger) *MediaUploader {
	uploadURL := cfg.UploadURL
	if uploadURL == "" {
		uploadURL = fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cfg.CloudName)
	}
	return &MediaUploader{
		uploadURL:    uploadURL,
		uploadPreset: cfg.UploadPreset,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload posts one file as multipart form data tagged with the
// configured upload preset. Any non-2xx response is a hard failure.
func (u *MediaUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, pr)
	if err != nil {
		// Unblock the writer goroutine; nothing will read from pr.
		pr.CloseWithError(err)
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()
	resp, err := u.httpClient.Do(req)
	if err != nil {
		metrics.RecordMediaUpload("error", time.Since(start))
		u.logger.Error("Media upload request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordMediaUpload(fmt.Sprintf("%d", resp.StatusCode), time.Since(start))
		u.logger.Error("Media host rejected upload",
			zap.Int("status", resp.StatusCode),
			zap.String("filename", filename),
		)
		return "", fmt.Errorf("media host returned status %d", resp.StatusCode)
	}

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.RecordMediaUpload("decode_error", time.Since(start))
		return "", fmt.Errorf("failed to decode media host response: %w", err)
	}
	if body.SecureURL == "" {
		metrics.RecordMediaUpload("no_url", time.Since(start))
		return "", fmt.Errorf("media host response missing secure_url")
	}

	metrics.RecordMediaUpload("success", time.Since(start))
	u.logger.Info("Media upload succeeded",
		zap.String("filename", filename),
		zap.Duration("took", time.Since(start)),
	)
	return body.SecureURL, nil
}
