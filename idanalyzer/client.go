package idanalyzer

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultScanURL = "https://api2.idanalyzer.com/scan"

// DecisionApprove is the only decision that verifies a guide automatically.
// Every other decision, and every transport failure, stays pending.
const DecisionApprove = "approve"

type scanRequest struct {
	Profile  string `json:"profile"`
	Document string `json:"document"`
}

// Result is what callers get back from a scan. Verify never returns an
// error: failures surface as Success=false with a human-readable Error,
// and the caller maps anything but an approve decision to pending.
type Result struct {
	Success  bool            `json:"success"`
	Decision string          `json:"decision"`
	Raw      json.RawMessage `json:"raw,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Approved reports whether the scan cleared the document automatically.
func (r Result) Approved() bool {
	return r.Success && r.Decision == DecisionApprove
}

type Client struct {
	APIKey    string
	ProfileID string
	ScanURL   string
	http      *http.Client
}

// NewClient builds a gateway client. An empty scanURL selects the live API.
func NewClient(apiKey, profileID, scanURL string) *Client {
	if scanURL == "" {
		scanURL = defaultScanURL
	}
	return &Client{
		APIKey:    apiKey,
		ProfileID: profileID,
		ScanURL:   scanURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientFromEnv builds a client from IDANALYZER_API_KEY and
// IDANALYZER_PROFILE_ID.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("IDANALYZER_API_KEY"), os.Getenv("IDANALYZER_PROFILE_ID"), os.Getenv("IDANALYZER_SCAN_URL"))
}

// Verify submits a document image for scanning and interprets the decision.
func (c *Client) Verify(document []byte) Result {
	payload := scanRequest{
		Profile:  c.ProfileID,
		Document: base64.StdEncoding.EncodeToString(document),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failure(fmt.Sprintf("failed to build scan payload: %v", err))
	}

	req, err := http.NewRequest(http.MethodPost, c.ScanURL, bytes.NewBuffer(body))
	if err != nil {
		return failure(fmt.Sprintf("failed to build scan request: %v", err))
	}
	req.Header.Set("X-API-KEY", c.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return failure(fmt.Sprintf("scan request failed: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(fmt.Sprintf("failed to read scan response: %v", err))
	}
	if resp.StatusCode != http.StatusOK {
		return failure(fmt.Sprintf("scan service returned status %d", resp.StatusCode))
	}

	var parsed struct {
		Decision string `json:"decision"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return failure(fmt.Sprintf("malformed scan response: %v", err))
	}
	if parsed.Decision == "" {
		parsed.Decision = "unknown"
	}

	return Result{
		Success:  true,
		Decision: parsed.Decision,
		Raw:      raw,
	}
}

// VerifyFile reads a saved upload and submits it for scanning.
func (c *Client) VerifyFile(path string) Result {
	document, err := os.ReadFile(path)
	if err != nil {
		return failure(fmt.Sprintf("failed to read document: %v", err))
	}
	return c.Verify(document)
}

func failure(msg string) Result {
	return Result{Success: false, Decision: "error", Error: msg}
}
