package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/utils"
	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hasher signs uploads and verifies downloads; nil disables both.
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. adapterCfg.HTTPAddress may omit the scheme; "http" is
// assumed. A non-empty hashKey turns on HashSHA256 signing of uploads and
// verification of downloads.
func NewHTTPServerAdapter(adapterCfg config.Adapter, hashKey string, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClientFor(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if hashKey != "" {
		a.hasher = utils.NewHasher(hashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Encode implements [ServerAdapter]. It POSTs req as JSON to /api/encode.
func (h *httpServerAdapter) Encode(ctx context.Context, req models.EncodeRequest) (models.Artifact, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("encode marshal request: %w", err)
	}

	var artifact models.Artifact
	resp, err := h.signedRequest(ctx, body).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&artifact).
		Post("/api/encode")
	if err != nil {
		return models.Artifact{}, fmt.Errorf("%w: encode request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Artifact{}, err
	}

	h.logger.Debug().Str("func", "*httpServerAdapter.Encode").Str("id", artifact.ID).Msg("message encoded on server")
	return artifact, nil
}

// DownloadImage implements [ServerAdapter]. It GETs /api/images/{id}.
func (h *httpServerAdapter) DownloadImage(ctx context.Context, id string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/api/images/{id}")
	if err != nil {
		return nil, fmt.Errorf("%w: download request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	data := resp.Body()
	if h.hasher != nil && !h.hasher.Verify(data, resp.Header().Get(utils.HashHeader)) {
		h.logger.Error().Str("func", "*httpServerAdapter.DownloadImage").
			Str("id", id).
			Str("hash from response", resp.Header().Get(utils.HashHeader)).
			Msg("hashes are not equal")
		return nil, ErrIntegrityCheckFailed
	}

	return data, nil
}

// Decode implements [ServerAdapter]. The multipart body is assembled in
// memory so it can be signed before sending.
func (h *httpServerAdapter) Decode(ctx context.Context, image []byte, password string) (models.DecodeResponse, error) {
	body, contentType, err := decodeForm(image, password)
	if err != nil {
		return models.DecodeResponse{}, fmt.Errorf("decode build form: %w", err)
	}

	var decoded models.DecodeResponse
	resp, err := h.signedRequest(ctx, body).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		SetResult(&decoded).
		Post("/api/decode")
	if err != nil {
		return models.DecodeResponse{}, fmt.Errorf("%w: decode request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DecodeResponse{}, err
	}

	return decoded, nil
}

// ListImages implements [ServerAdapter]. It GETs /api/images with the
// filter as query parameters.
func (h *httpServerAdapter) ListImages(ctx context.Context, filter models.ArtifactFilter) ([]models.Artifact, error) {
	req := h.client.R().SetContext(ctx)
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.Format != "" {
		req.SetQueryParam("format", string(filter.Format))
	}
	if filter.EncodedAfter != nil {
		req.SetQueryParam("after", filter.EncodedAfter.UTC().Format(time.RFC3339))
	}

	var list models.ArtifactList
	resp, err := req.SetResult(&list).Get("/api/images")
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Artifacts, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Info(ctx context.Context) (models.ServerInfo, error) {
	var info models.ServerInfo
	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/api/info")
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w: info request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerInfo{}, err
	}
	return info, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// signedRequest returns a request carrying the HashSHA256 of body when a
// hash key is configured.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body []byte) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.HashHex(body))
	}
	return req
}

func decodeForm(image []byte, password string) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", "carrier")
	if err != nil {
		return nil, "", err
	}
	if _, err = part.Write(image); err != nil {
		return nil, "", err
	}
	if err = mw.WriteField("password", password); err != nil {
		return nil, "", err
	}
	if err = mw.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}
