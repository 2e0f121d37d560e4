package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/inventory-insights/pkg/errors"
	"google.golang.org/api/googleapi"
)

const (
	defaultBaseURL  = "https://firestore.googleapis.com/v1"
	defaultPageSize = 100
	maxPages        = 1000
)

var errProjectRequired = errors.New("firestore project id is required")

// Client lists documents through the Firestore REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	projectID  string
	apiKey     string
	pageSize   int
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the Firestore REST root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithPageSize sets the pageSize query parameter.
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// NewClient builds a Firestore client for the project. The API key is optional.
func NewClient(projectID, apiKey string, opts ...Option) (*Client, error) {
	project := strings.TrimSpace(projectID)
	if project == "" {
		return nil, errProjectRequired
	}

	client := &Client{
		projectID:  project,
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		pageSize:   defaultPageSize,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// Document is one Firestore document in its typed-field encoding.
type Document struct {
	Name       string           `json:"name"`
	Fields     map[string]Value `json:"fields"`
	CreateTime string           `json:"createTime"`
	UpdateTime string           `json:"updateTime"`
}

// ID returns the last path segment of the document name.
func (d Document) ID() string {
	if i := strings.LastIndex(d.Name, "/"); i >= 0 {
		return d.Name[i+1:]
	}
	return d.Name
}

type listResponse struct {
	Documents     []Document `json:"documents"`
	NextPageToken string     `json:"nextPageToken"`
}

// ListDocuments returns every document in the collection, following page tokens until exhausted.
func (c *Client) ListDocuments(ctx context.Context, collection string) ([]Document, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "firestore client not configured")
	}
	collection = strings.Trim(strings.TrimSpace(collection), "/")
	if collection == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection is required")
	}

	var docs []Document
	token := ""
	for page := 0; page < maxPages; page++ {
		resp, err := c.listPage(ctx, collection, token)
		if err != nil {
			return nil, err
		}
		docs = append(docs, resp.Documents...)
		if resp.NextPageToken == "" {
			return docs, nil
		}
		token = resp.NextPageToken
	}
	return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("collection %s exceeded %d pages", collection, maxPages))
}

func (c *Client) listPage(ctx context.Context, collection, token string) (*listResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL(collection, token), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build list documents request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute list documents request")
	}
	defer func() { _ = resp.Body.Close() }()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("list %s failed", collection))
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode list documents response")
	}
	return &out, nil
}

func (c *Client) collectionURL(collection, token string) string {
	query := url.Values{}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}
	query.Set("pageSize", strconv.Itoa(c.pageSize))
	if token != "" {
		query.Set("pageToken", token)
	}

	segments := strings.Split(collection, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/projects/%s/databases/(default)/documents/%s?%s",
		strings.TrimRight(c.baseURL, "/"),
		url.PathEscape(c.projectID),
		strings.Join(segments, "/"),
		query.Encode(),
	)
}

// APIError extracts the Google API error from err, if any.
func APIError(err error) (*googleapi.Error, bool) {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
