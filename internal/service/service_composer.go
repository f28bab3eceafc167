package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/imageio"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/utils"
	"github.com/MKhiriev/fractal-cipher/models"
)

// MaxCarrierSide bounds the width and height of a rendered carrier.
const MaxCarrierSide = 4096

type idGenerator interface {
	Generate() string
}

type composer struct {
	stego    StegoService
	renderer FractalRenderer

	ids idGenerator
	now func() time.Time
	cfg config.App

	logger *logger.Logger
}

// NewComposer returns a [Composer] that keeps nothing: the terminal client
// uses it to encode and decode in-process.
func NewComposer(stego StegoService, renderer FractalRenderer, cfg config.App, logger *logger.Logger) Composer {
	return newComposer(stego, renderer, cfg, logger)
}

func newComposer(stego StegoService, renderer FractalRenderer, cfg config.App, logger *logger.Logger) *composer {
	return &composer{
		stego:    stego,
		renderer: renderer,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		cfg:      cfg,
		logger:   logger,
	}
}

// Compose renders a carrier for the request's seed phrase and hides the
// text in it. It returns the metadata and the encoded image bytes.
func (c *composer) Compose(ctx context.Context, req models.EncodeRequest) (models.Artifact, []byte, error) {
	req, err := c.normalizeEncodeRequest(req)
	if err != nil {
		return models.Artifact{}, nil, err
	}

	seedPhrase := req.SeedPhrase
	if seedPhrase == "" {
		seedPhrase = c.cfg.DefaultSeedPhrase
	}
	seed := utils.SeedFromString(seedPhrase)

	carrier, err := c.renderer.Render(ctx, req.Width, req.Height, seed)
	if err != nil {
		return models.Artifact{}, nil, fmt.Errorf("error rendering carrier: %w", err)
	}

	// the async path returns as soon as ctx is done, key derivation or not
	encoded := <-c.stego.EncodeAsync(ctx, req.Text, req.Password, carrier)
	if encoded.Err != nil {
		return models.Artifact{}, nil, encoded.Err
	}

	data, err := imageio.EncodeBytes(encoded.Value, req.Format)
	if err != nil {
		return models.Artifact{}, nil, fmt.Errorf("error encoding image: %w", err)
	}

	return models.Artifact{
		ID:         c.ids.Generate(),
		Status:     models.StatusEmbedded,
		Length:     utf8.RuneCountInString(req.Text),
		Seed:       seed,
		Encryption: c.stego.Policy().Label(),
		Width:      req.Width,
		Height:     req.Height,
		Format:     req.Format,
		EncodedAt:  c.now().UTC(),
	}, data, nil
}

// Decode reads a lossless image and recovers the hidden text.
func (c *composer) Decode(ctx context.Context, req models.DecodeRequest) (models.DecodeResponse, error) {
	if len(req.Image) == 0 {
		return models.DecodeResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoImage)
	}
	password := strings.TrimSpace(req.Password)
	if password == "" {
		return models.DecodeResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoPassword)
	}

	carrier, _, err := imageio.Decode(req.Image)
	if err != nil {
		return models.DecodeResponse{}, err
	}

	decoded := <-c.stego.DecodeAsync(ctx, carrier, password)
	if decoded.Err != nil {
		return models.DecodeResponse{}, decoded.Err
	}

	return models.DecodeResponse{
		Status: models.StatusDecrypted,
		Text:   decoded.Value,
		Length: utf8.RuneCountInString(decoded.Value),
	}, nil
}

// normalizeEncodeRequest trims text and password, so what gets embedded is
// what a decoder trimming its password input will expect.
func (c *composer) normalizeEncodeRequest(req models.EncodeRequest) (models.EncodeRequest, error) {
	req.Text = strings.TrimSpace(req.Text)
	req.Password = strings.TrimSpace(req.Password)
	if req.Text == "" {
		return req, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoText)
	}
	if req.Password == "" {
		return req, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoPassword)
	}

	if req.Width == 0 {
		req.Width = c.cfg.DefaultWidth
	}
	if req.Height == 0 {
		req.Height = c.cfg.DefaultHeight
	}
	if req.Width < 1 || req.Height < 1 || req.Width > MaxCarrierSide || req.Height > MaxCarrierSide {
		return req, fmt.Errorf("%w: %w: %dx%d", ErrInvalidDataProvided, ErrValidationImageSize, req.Width, req.Height)
	}

	if req.Format == "" {
		req.Format = models.FormatPNG
	}
	if !req.Format.Valid() {
		return req, fmt.Errorf("%w: %w: %q", ErrInvalidDataProvided, ErrValidationFormat, req.Format)
	}

	return req, nil
}
