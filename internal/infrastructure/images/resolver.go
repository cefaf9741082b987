package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domainerrors "farm-market.backend/internal/domain/errors"
)

// RefKind classifies an image reference
type RefKind int

const (
	RefDataURI RefKind = iota
	RefRemoteURL
	RefRelativeName
)

// ClassifyRef determines how a reference must be resolved. First match
// wins: inline data URI, absolute URL, else bare filename.
func ClassifyRef(ref string) RefKind {
	switch {
	case strings.HasPrefix(ref, "data:image/"):
		return RefDataURI
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return RefRemoteURL
	default:
		return RefRelativeName
	}
}

// Image is a resolved binary payload
type Image struct {
	Data []byte
	MIME string
}

// Resolver turns an image reference into binary image data
type Resolver struct {
	baseURL    string
	imagesPath string
	httpClient *http.Client
}

// NewResolver creates a resolver. Bare filenames are fetched from
// baseURL/imagesPath/name.
func NewResolver(baseURL, imagesPath string) *Resolver {
	return &Resolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		imagesPath: strings.Trim(imagesPath, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Resolve produces the image bytes for a reference. Every failure,
// including an empty payload, comes back wrapping ErrImageUnresolved so
// callers can degrade instead of surfacing an error.
func (r *Resolver) Resolve(ctx context.Context, ref string) (*Image, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty reference", domainerrors.ErrImageUnresolved)
	}

	switch ClassifyRef(ref) {
	case RefDataURI:
		return r.resolveDataURI(ref)
	case RefRemoteURL:
		return r.fetch(ctx, ref)
	default:
		return r.fetch(ctx, r.baseURL+"/"+r.imagesPath+"/"+ref)
	}
}

func (r *Resolver) resolveDataURI(ref string) (*Image, error) {
	// data:image/<subtype>;base64,<payload>
	meta, payload, found := strings.Cut(ref, ",")
	if !found {
		return nil, fmt.Errorf("%w: malformed data uri", domainerrors.ErrImageUnresolved)
	}

	mime := strings.TrimPrefix(meta, "data:")
	mime = strings.TrimSuffix(mime, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload", domainerrors.ErrImageUnresolved)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", domainerrors.ErrImageUnresolved)
	}
	return &Image{Data: data, MIME: mime}, nil
}

func (r *Resolver) fetch(ctx context.Context, url string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrImageUnresolved, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrImageUnresolved, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch returned status %d", domainerrors.ErrImageUnresolved, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrImageUnresolved, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", domainerrors.ErrImageUnresolved)
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/jpeg"
	}
	return &Image{Data: data, MIME: mime}, nil
}
