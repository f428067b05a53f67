// Package device provides Go implementations of the platform capabilities the
// diary consumes: a camera, a locator with reverse geocoding, and a notifier.
// They satisfy the interfaces declared by the service package.
package device

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-diary/internal/domain"
)

// FileCamera "takes" a picture by copying an existing image file into the
// photo directory. An empty source path is treated as the user backing out.
type FileCamera struct {
	source   string
	photoDir string
}

// NewFileCamera returns a camera that will capture source into photoDir.
func NewFileCamera(source, photoDir string) *FileCamera {
	return &FileCamera{source: source, photoDir: photoDir}
}

// RequestPermission is granted when the photo directory can be created.
func (c *FileCamera) RequestPermission(_ context.Context) (domain.Permission, error) {
	if err := os.MkdirAll(c.photoDir, 0o755); err != nil {
		return domain.PermissionDenied, nil
	}
	return domain.PermissionGranted, nil
}

// Capture copies the source image and returns a file:// URI for the copy.
func (c *FileCamera) Capture(ctx context.Context, _ domain.CaptureOptions) (domain.CaptureResult, error) {
	if c.source == "" {
		return domain.CaptureResult{Canceled: true}, nil
	}
	if err := ctx.Err(); err != nil {
		return domain.CaptureResult{}, fmt.Errorf("device.FileCamera.Capture: %w", err)
	}

	src, err := os.Open(c.source)
	if err != nil {
		return domain.CaptureResult{}, fmt.Errorf("device.FileCamera.Capture: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(c.source))
	if ext == "" {
		ext = ".jpg"
	}
	target := filepath.Join(c.photoDir, uuid.NewString()+ext)

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return domain.CaptureResult{}, fmt.Errorf("device.FileCamera.Capture: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return domain.CaptureResult{}, fmt.Errorf("device.FileCamera.Capture: copy: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(target)
		return domain.CaptureResult{}, fmt.Errorf("device.FileCamera.Capture: close: %w", err)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return domain.CaptureResult{}, fmt.Errorf("device.FileCamera.Capture: %w", err)
	}
	return domain.CaptureResult{ImageURI: fileURI(abs)}, nil
}

// UploadedPhoto is a camera for a photo the client has already taken.
// Capture hands back the URI untouched; only an empty URI means nothing was taken.
type UploadedPhoto string

func (UploadedPhoto) RequestPermission(context.Context) (domain.Permission, error) {
	return domain.PermissionGranted, nil
}

func (p UploadedPhoto) Capture(context.Context, domain.CaptureOptions) (domain.CaptureResult, error) {
	if p == "" {
		return domain.CaptureResult{Canceled: true}, nil
	}
	return domain.CaptureResult{ImageURI: string(p)}, nil
}

func fileURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
