package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateSendsInlineImage(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotKey = req.URL.Query().Get("key")
		raw, _ := io.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": `{"isValid": true, "confidence": 0.9, "reason": "ok"}`},
					},
				}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "vision-model", 5*time.Second)
	out, err := c.Generate(context.Background(), "judge this", []byte("img-bytes"), "image/png")
	require.NoError(t, err)
	assert.Contains(t, out, `"isValid": true`)

	assert.Equal(t, "/models/vision-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 2)
	assert.Equal(t, "judge this", gotBody.Contents[0].Parts[0].Text)
	assert.Equal(t, "image/png", gotBody.Contents[0].Parts[1].InlineData.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("img-bytes")), gotBody.Contents[0].Parts[1].InlineData.Data)
}

func TestClient_GenerateErrorPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/models/rate-limited:generateContent":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/models/no-candidates:generateContent":
			_, _ = w.Write([]byte(`{"candidates": []}`))
		default:
			_, _ = w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL, "rate-limited", 5*time.Second)
	_, err := c.Generate(context.Background(), "p", []byte("x"), "image/jpeg")
	assert.Error(t, err)

	c = NewClient("k", srv.URL, "no-candidates", 5*time.Second)
	_, err = c.Generate(context.Background(), "p", []byte("x"), "image/jpeg")
	assert.Error(t, err)

	c = NewClient("k", srv.URL, "bad-json", 5*time.Second)
	_, err = c.Generate(context.Background(), "p", []byte("x"), "image/jpeg")
	assert.Error(t, err)
}
