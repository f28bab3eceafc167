// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/fractal-cipher/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeGzipError reads an error body that may have been compressed.
func decodeGzipError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body io.Reader = rec.Body
	if rec.Header().Get("Content-Encoding") == "gzip" {
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		defer zr.Close()
		body = zr
	}
	var resp utils.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		contentType    string
		body           string
		expectGzipped  bool
	}{
		{
			name:           "json is compressed when client accepts gzip",
			acceptEncoding: "gzip",
			contentType:    "application/json",
			body:           `{"text":"hello","length":5}`,
			expectGzipped:  true,
		},
		{
			name:           "text is compressed with quality values",
			acceptEncoding: "gzip;q=1.0, identity;q=0.5",
			contentType:    "text/plain",
			body:           strings.Repeat("version ", 100),
			expectGzipped:  true,
		},
		{
			name:           "png passes through untouched",
			acceptEncoding: "gzip",
			contentType:    "image/png",
			body:           "\x89PNG\r\n\x1a\n",
			expectGzipped:  false,
		},
		{
			name:           "no compression without accept-encoding",
			acceptEncoding: "",
			contentType:    "application/json",
			body:           `{}`,
			expectGzipped:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if !tt.expectGzipped {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, rr.Body.String())
				return
			}

			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			zr, err := gzip.NewReader(rr.Body)
			require.NoError(t, err)
			defer zr.Close()
			decompressed, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(decompressed))
		})
	}
}

func TestGZip_Request(t *testing.T) {
	t.Run("gzipped body is decompressed", func(t *testing.T) {
		var got []byte
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error
			got, err = io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Empty(t, r.Header.Get("Content-Encoding"))
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/test", gzipBytes(t, []byte(`{"text":"hi"}`)))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"text":"hi"}`, string(got))
	})

	t.Run("invalid gzip body", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next must not be called")
		})

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("not gzipped"))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.NotEmpty(t, decodeGzipError(t, rr).Error)
	})
}
