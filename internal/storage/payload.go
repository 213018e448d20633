package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// maxRemoteImageSize caps how much is read from a remote image URL.
const maxRemoteImageSize = 20 << 20

var errEmptyPayload = errors.New("empty image payload")

// decodePayload turns an image payload into raw bytes. A payload is a
// data URL, a remote http(s) URL, or bare base64.
func decodePayload(ctx context.Context, client *http.Client, payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, errEmptyPayload
	}

	switch {
	case strings.HasPrefix(payload, "data:"):
		return decodeDataURL(payload)
	case strings.HasPrefix(payload, "http://"), strings.HasPrefix(payload, "https://"):
		return fetchRemote(ctx, client, payload)
	default:
		return decodeBase64(payload)
	}
}

func decodeDataURL(payload string) ([]byte, error) {
	header, body, ok := strings.Cut(payload, ",")
	if !ok {
		return nil, errors.New("malformed data url")
	}

	if strings.HasSuffix(header, ";base64") {
		return decodeBase64(body)
	}

	data, err := url.PathUnescape(body)
	if err != nil {
		return nil, fmt.Errorf("malformed data url: %w", err)
	}
	return []byte(data), nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "=")

	data, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.RawURLEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	if len(data) == 0 {
		return nil, errEmptyPayload
	}
	return data, nil
}

func fetchRemote(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image url: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if len(data) > maxRemoteImageSize {
		return nil, fmt.Errorf("remote image exceeds %d bytes", maxRemoteImageSize)
	}
	if len(data) == 0 {
		return nil, errEmptyPayload
	}
	return data, nil
}

type preparedImage struct {
	data        []byte
	contentType string
	ext         string
}

// prepareImage checks that data is an image and scales it down to maxWidth
// when it is wider. Formats imaging cannot re-encode are stored as sent.
func prepareImage(data []byte, maxWidth int) (*preparedImage, error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("payload is %s, not an image", mtype.String())
	}

	out := &preparedImage{data: data, contentType: mtype.String(), ext: mtype.Extension()}
	if maxWidth <= 0 {
		return out, nil
	}

	format, err := imaging.FormatFromExtension(out.ext)
	if err != nil {
		return out, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if img.Bounds().Dx() <= maxWidth {
		return out, nil
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	out.data = buf.Bytes()

	return out, nil
}

// PublicIDFromURL derives the delegate id of a stored image: the namespace
// followed by the last path segment of its URL, cut at the first dot.
func PublicIDFromURL(namespace, imageURL string) string {
	p := imageURL
	if u, err := url.Parse(imageURL); err == nil {
		p = u.Path
	}

	name, _, _ := strings.Cut(path.Base(p), ".")
	if name == "" || name == "/" {
		return ""
	}

	return namespace + "/" + name
}
