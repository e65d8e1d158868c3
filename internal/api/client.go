package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/intervue-ai/intervue/internal/store"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// Client is a thin wrapper over the interview backend's HTTP API. Each method
// maps 1:1 to an endpoint and either returns the decoded payload or
// propagates the transport error. There is no retry, timeout, or backoff;
// failures are terminal for that call and surfaced to the user.
type Client struct {
	baseURL string
	httpc   *http.Client
	records store.RecordRepo
}

// New creates a Client against baseURL. records holds the bearer token, if
// any; it may be nil for unauthenticated use.
func New(baseURL string, records store.RecordRepo) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		records: records,
	}
}

// UploadResume posts the file at path as multipart form data and returns the
// parsed fields plus the list of fields the parser could not extract.
func (c *Client) UploadResume(ctx context.Context, path string) (*UploadResumeResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/interview/upload-resume", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out UploadResumeResponse
	if err := c.do(req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrCheckCandidate looks up the candidate by email, creating a new
// record when none exists.
func (c *Client) CreateOrCheckCandidate(ctx context.Context, fields ParsedResume) (*CreateOrCheckResponse, error) {
	var out CreateOrCheckResponse
	if err := c.postJSON(ctx, "/interview/create-or-check-candidate", fields, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCandidateInfo sends partial profile corrections for an existing
// candidate.
func (c *Client) UpdateCandidateInfo(ctx context.Context, candidateID string, fields map[string]string) error {
	return c.postJSON(ctx, "/interview/update-candidate-info/"+url.PathEscape(candidateID), fields, nil, nil)
}

// StartInterview starts or resumes the candidate's interview session.
func (c *Client) StartInterview(ctx context.Context, candidateID string) (*StartInterviewResponse, error) {
	var out StartInterviewResponse
	if err := c.postJSON(ctx, "/interview/start-interview/"+url.PathEscape(candidateID), nil, &out, startInterviewSchema); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAnswer submits the answer for the session's current question.
func (c *Client) SubmitAnswer(ctx context.Context, sessionID, answer string) (*SubmitAnswerResponse, error) {
	var out SubmitAnswerResponse
	payload := map[string]string{"answer": answer}
	if err := c.postJSON(ctx, "/interview/submit-answer/"+url.PathEscape(sessionID), payload, &out, submitAnswerSchema); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCandidates fetches the candidate collection. status and sortBy are
// optional server-side hints; empty values are omitted.
func (c *Client) ListCandidates(ctx context.Context, status, sortBy string) ([]Candidate, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if sortBy != "" {
		q.Set("sortBy", sortBy)
	}
	endpoint := c.baseURL + "/candidates"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var out []Candidate
	if err := c.do(req, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// CandidateDetails fetches one candidate with the embedded interview session.
func (c *Client) CandidateDetails(ctx context.Context, candidateID string) (*Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/candidates/"+url.PathEscape(candidateID), nil)
	if err != nil {
		return nil, err
	}

	var out Candidate
	if err := c.do(req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any, schema *responseSchema) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out, schema)
}

// do executes the request, decoding a 2xx body into out. A 401 clears the
// stored bearer token before the error is returned.
func (c *Client) do(req *http.Request, out any, schema *responseSchema) error {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.loadToken(req.Context()); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearToken(req.Context())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Detail: decodeDetail(resp.Body)}
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if schema != nil {
		if err := schema.validate(data); err != nil {
			return fmt.Errorf("response for %s: %w", req.URL.Path, err)
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) loadToken(ctx context.Context) string {
	if c.records == nil {
		return ""
	}
	data, err := c.records.Load(ctx, store.RecordAuthToken)
	if err != nil || len(data) == 0 {
		return ""
	}
	return string(data)
}

func (c *Client) clearToken(ctx context.Context) {
	if c.records == nil {
		return
	}
	_ = c.records.Delete(ctx, store.RecordAuthToken)
}

// decodeDetail extracts the backend's {"detail": "..."} error body, if any.
func decodeDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
