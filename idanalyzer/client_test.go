package idanalyzer

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyApprove(t *testing.T) {
	document := []byte("fake image bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Profile  string `json:"profile"`
			Document string `json:"document"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-profile", req.Profile)

		decoded, err := base64.StdEncoding.DecodeString(req.Document)
		require.NoError(t, err)
		assert.Equal(t, document, decoded)

		json.NewEncoder(w).Encode(map[string]string{"decision": "approve"})
	}))
	defer server.Close()

	client := NewClient("test-key", "test-profile", server.URL)
	result := client.Verify(document)

	assert.True(t, result.Success)
	assert.Equal(t, "approve", result.Decision)
	assert.True(t, result.Approved())
	assert.NotEmpty(t, result.Raw)
}

func TestVerifyOtherDecision(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"decision": "review"})
	}))
	defer server.Close()

	result := NewClient("k", "p", server.URL).Verify([]byte("doc"))

	assert.True(t, result.Success)
	assert.Equal(t, "review", result.Decision)
	assert.False(t, result.Approved())
}

func TestVerifyMissingDecision(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	result := NewClient("k", "p", server.URL).Verify([]byte("doc"))

	assert.True(t, result.Success)
	assert.Equal(t, "unknown", result.Decision)
	assert.False(t, result.Approved())
}

func TestVerifyServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	result := NewClient("k", "p", server.URL).Verify([]byte("doc"))

	assert.False(t, result.Success)
	assert.Equal(t, "error", result.Decision)
	assert.Contains(t, result.Error, "status 500")
}

func TestVerifyMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	result := NewClient("k", "p", server.URL).Verify([]byte("doc"))

	assert.False(t, result.Success)
	assert.False(t, result.Approved())
}

func TestVerifyNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	result := NewClient("k", "p", server.URL).Verify([]byte("doc"))

	assert.False(t, result.Success)
	assert.Equal(t, "error", result.Decision)
	assert.NotEmpty(t, result.Error)
}

func TestVerifyFileMissing(t *testing.T) {
	result := NewClient("k", "p", "http://127.0.0.1:1").VerifyFile("/does/not/exist")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "failed to read document")
}
