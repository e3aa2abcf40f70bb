// Package storage stores binary objects in Supabase Storage and returns
// their public URLs.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
)

// Config configures the object store client.
type Config struct {
	ProjectURL string // e.g. https://xyz.supabase.co
	Bucket     string // Public bucket receiving uploads
	APIKey     string // Service role key
}

// ObjectStore writes objects to a Supabase Storage bucket.
type ObjectStore struct {
	client *http.Client
	base   string
	bucket string
	apiKey string
}

// New creates an ObjectStore. A nil client uses http.DefaultClient.
func New(cfg Config, client *http.Client) (*ObjectStore, error) {
	if cfg.ProjectURL == "" {
		return nil, errors.New("storage: project URL is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ObjectStore{
		client: client,
		base:   strings.TrimRight(cfg.ProjectURL, "/") + "/storage/v1/object",
		bucket: cfg.Bucket,
		apiKey: cfg.APIKey,
	}, nil
}

// Put uploads data under path, replacing any existing object, and returns
// the object's public URL.
func (s *ObjectStore) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return "", errors.New("storage: path is required")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	target := s.base + "/" + url.PathEscape(s.bucket) + "/" + escapePath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Log.Errorw("object upload failed", "path", path, "error", err)
		return "", fmt.Errorf("storage: upload %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		logger.Log.Errorw("object upload rejected", "path", path, "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("storage: upload %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	publicURL := s.PublicURL(path)
	logger.Log.Infow("object uploaded", "path", path, "size", len(data), "content_type", contentType, "url", publicURL)
	return publicURL, nil
}

// PublicURL returns the URL at which path is served from a public bucket.
func (s *ObjectStore) PublicURL(path string) string {
	return s.base + "/public/" + url.PathEscape(s.bucket) + "/" + escapePath(strings.TrimLeft(path, "/"))
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
