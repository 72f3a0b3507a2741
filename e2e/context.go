package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// TestContext holds per-scenario HTTP state against a running server.
type TestContext struct {
	BaseURL string
	Token   string

	client     *http.Client
	suffix     string
	lastStatus int
	lastBody   []byte
	lastHeader http.Header
	ids        map[string]string
}

func NewTestContext(baseURL, token string) *TestContext {
	return &TestContext{
		BaseURL: baseURL,
		Token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears state between scenarios. The suffix keeps zone names unique
// across runs against a long-lived server.
func (tc *TestContext) Reset() {
	tc.suffix = strconv.FormatInt(time.Now().UnixNano(), 36)
	tc.lastStatus = 0
	tc.lastBody = nil
	tc.lastHeader = nil
	tc.ids = map[string]string{}
}

// Unique maps a scenario name onto the name sent to the server.
func (tc *TestContext) Unique(name string) string {
	return name + "-" + tc.suffix
}

func (tc *TestContext) Remember(alias, id string) { tc.ids[alias] = id }

func (tc *TestContext) Lookup(alias string) (string, error) {
	id, ok := tc.ids[alias]
	if !ok {
		return "", fmt.Errorf("no id recorded for %q", alias)
	}
	return id, nil
}

func (tc *TestContext) GET(path string) error { return tc.do(http.MethodGet, path, nil) }
func (tc *TestContext) POST(path string, body any) error { return tc.do(http.MethodPost, path, body) }
func (tc *TestContext) PUT(path string, body any) error { return tc.do(http.MethodPut, path, body) }
func (tc *TestContext) DELETE(path string) error { return tc.do(http.MethodDelete, path, nil) }

func (tc *TestContext) StatusCode() int { return tc.lastStatus }

func (tc *TestContext) Header(key string) string { return tc.lastHeader.Get(key) }

// GetResponseField returns a top-level field of the last JSON object response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var body map[string]any
	if err := json.Unmarshal(tc.lastBody, &body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	v, ok := body[field]
	if !ok {
		return nil, fmt.Errorf("field %q not in response: %s", field, tc.lastBody)
	}
	return v, nil
}

// DecodeResponse decodes the last response body into dst.
func (tc *TestContext) DecodeResponse(dst any) error {
	return json.Unmarshal(tc.lastBody, dst)
}

func (tc *TestContext) do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, tc.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.Token != "" && method != http.MethodGet {
		req.Header.Set("Authorization", "Bearer "+tc.Token)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.lastBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.lastStatus = resp.StatusCode
	tc.lastHeader = resp.Header
	return nil
}
