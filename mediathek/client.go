// Package mediathek implements the search client and result paginator for the
// MediathekViewWeb query API.
package mediathek

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mediasan-cli/mediasan/constant"
	"github.com/mediasan-cli/mediasan/internal/cache"
	"github.com/mediasan-cli/mediasan/key"
	"github.com/mediasan-cli/mediasan/log"
	"github.com/mediasan-cli/mediasan/network"
	"github.com/mediasan-cli/mediasan/source"
	"github.com/mediasan-cli/mediasan/util"
	"github.com/spf13/viper"
)

// PageSize is the fixed number of records requested per page.
const PageSize = 100

// FieldScope selects which index fields a search query matches against.
// Exactly four combinations exist, so this is a closed enumeration rather
// than open-ended field lists.
type FieldScope int

const (
	ScopeAll FieldScope = iota
	ScopeTitle
	ScopeTopic
	ScopeBoth
)

// ScopeFor maps the title/topic flag pair onto a FieldScope.
func ScopeFor(title, topic bool) FieldScope {
	switch {
	case title && topic:
		return ScopeBoth
	case title:
		return ScopeTitle
	case topic:
		return ScopeTopic
	default:
		return ScopeAll
	}
}

// fields returns the wire representation of the scope; nil means all fields.
func (s FieldScope) fields() []string {
	switch s {
	case ScopeTitle:
		return []string{"title"}
	case ScopeTopic:
		return []string{"topic"}
	case ScopeBoth:
		return []string{"title", "topic"}
	default:
		return nil
	}
}

// String returns a stable identifier for the scope, used in cache keys.
func (s FieldScope) String() string {
	switch s {
	case ScopeTitle:
		return "title"
	case ScopeTopic:
		return "topic"
	case ScopeBoth:
		return "title+topic"
	default:
		return "all"
	}
}

type searchQuery struct {
	Fields []string `json:"fields,omitempty"`
	Query  string   `json:"query"`
}

type requestBody struct {
	Queries   []searchQuery `json:"queries"`
	SortBy    string        `json:"sortBy"`
	SortOrder string        `json:"sortOrder"`
	Future    bool          `json:"future"`
	Offset    int           `json:"offset"`
	Size      int           `json:"size"`
}

type responseBody struct {
	Result struct {
		Results   []*source.Record `json:"results"`
		QueryInfo struct {
			TotalResults int `json:"totalResults"`
		} `json:"queryInfo"`
	} `json:"result"`
}

// Client queries the MediathekViewWeb API page by page.
type Client struct {
	HTTP     *http.Client
	Endpoint string

	// Cached enables the content-addressed response cache. Disabled in tests.
	Cached bool
}

// New returns a client bound to the configured endpoint and the shared network client.
func New() *Client {
	return &Client{
		HTTP:     network.Client,
		Endpoint: viper.GetString(key.APIURL),
		Cached:   true,
	}
}

// FetchAll accumulates every result page for the query until the API returns
// an empty page, preserving the API's own timestamp-descending order across
// the merge. A non-200 response is fatal to the run, but the records
// accumulated before the failing page are still returned alongside the error.
func (c *Client) FetchAll(query string, scope FieldScope, future bool) ([]*source.Record, error) {
	cacheKey := cache.GenerateKey(query, fmt.Sprintf("%s|%t", scope, future))
	if c.Cached {
		var cached []*source.Record
		if cache.Read(cacheKey, &cached) {
			log.Debugf("search cache hit for %q", query)
			return cached, nil
		}
	}

	var all []*source.Record
	for offset := 0; ; offset += PageSize {
		page, err := c.fetchPage(query, scope, future, offset)
		if err != nil {
			return all, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
	}

	// Only a fully paginated result set is worth caching.
	if c.Cached && len(all) > 0 {
		_ = cache.Write(cacheKey, all)
	}

	return all, nil
}

func (c *Client) fetchPage(query string, scope FieldScope, future bool, offset int) ([]*source.Record, error) {
	body := requestBody{
		Queries:   []searchQuery{{Fields: scope.fields(), Query: query}},
		SortBy:    "timestamp",
		SortOrder: "desc",
		Future:    future,
		Offset:    offset,
		Size:      PageSize,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	// The API expects the JSON payload under a text/plain content type.
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query api: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query api: unexpected status %d", resp.StatusCode)
	}

	var decoded responseBody
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}

	return decoded.Result.Results, nil
}
