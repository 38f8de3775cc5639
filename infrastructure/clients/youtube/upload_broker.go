package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"video-field/domain/dto"
	"video-field/domain/model"
)

// uploadInitQuery is the query string of the resumable-upload initiation call.
type uploadInitQuery struct {
	UploadType string `url:"uploadType"`
	Part       string `url:"part"`
}

type uploadSnippet struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type uploadStatus struct {
	PrivacyStatus           string `json:"privacyStatus"`
	SelfDeclaredMadeForKids bool   `json:"selfDeclaredMadeForKids"`
}

type uploadInitBody struct {
	Snippet uploadSnippet `json:"snippet"`
	Status  uploadStatus  `json:"status"`
}

// UploadBroker opens resumable upload sessions against the provider's upload
// endpoint. The session URL goes back to the browser; no video bytes ever
// pass through this service.
type UploadBroker struct {
	baseURL    string
	httpClient *http.Client
}

func NewUploadBroker(baseURL string) *UploadBroker {
	return &UploadBroker{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient overrides the transport, for tests.
func (b *UploadBroker) WithHTTPClient(client *http.Client) *UploadBroker {
	b.httpClient = client
	return b
}

// CreateSession initiates a resumable upload and returns the provider-issued
// session URL from the Location header. A 2xx response without that header
// violates the provider contract and is not retried.
func (b *UploadBroker) CreateSession(ctx context.Context, accessToken string, meta dto.UploadMetadata, flags dto.UploadStatusFlags) (*model.UploadSession, error) {
	q, err := query.Values(uploadInitQuery{UploadType: "resumable", Part: "snippet,status"})
	if err != nil {
		return nil, fmt.Errorf("failed to encode upload init query: %w", err)
	}
	endpoint := fmt.Sprintf("%s/upload/youtube/v3/videos?%s", b.baseURL, q.Encode())

	body := uploadInitBody{
		Snippet: uploadSnippet{
			Title:       meta.Title,
			Description: meta.Description,
			CategoryID:  meta.CategoryID,
			Tags:        meta.Tags,
		},
		Status: uploadStatus{
			PrivacyStatus:           string(flags.PrivacyStatus),
			SelfDeclaredMadeForKids: flags.MadeForKids,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upload metadata: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload init request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, &model.UploadInitError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, brokerError(resp)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return nil, &model.UploadInitError{Reason: "provider response missing Location header"}
	}
	return &model.UploadSession{UploadURL: location}, nil
}

// brokerError surfaces the provider's own error.message when the body is the
// standard JSON error envelope, otherwise the raw text.
func brokerError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	message := strings.TrimSpace(string(raw))
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}
	return &model.QuotaOrPermissionError{StatusCode: resp.StatusCode, Message: message}
}
