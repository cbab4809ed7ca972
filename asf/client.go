// Package asf looks up granule metadata from the ASF search API.
package asf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/opensarlab/osl-notebook-kit/domain/jobs"
)

const DefaultBaseURL = "https://api.daac.asf.alaska.edu/services/search/param"

// ErrNotFound is returned when the search API has no product for a granule.
var ErrNotFound = errors.New("granule not found")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client provides access to the ASF search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClientWithHTTP creates a client against baseURL with a custom HTTP
// client. An empty baseURL selects DefaultBaseURL.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// FeatureCollection is the GeoJSON search response.
type FeatureCollection struct {
	Features []Feature `json:"features"`
}

type Feature struct {
	Properties Properties `json:"properties"`
}

// Properties holds the product attributes used for job enrichment.
type Properties struct {
	SceneName       string  `json:"sceneName"`
	FileID          string  `json:"fileID"`
	FlightDirection string  `json:"flightDirection"`
	PathNumber      flexInt `json:"pathNumber"`
	FrameNumber     flexInt `json:"frameNumber"`
	Polarization    string  `json:"polarization"`
	ProcessingLevel string  `json:"processingLevel"`
}

// flexInt accepts both numbers and numeric strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", b, err)
	}
	*f = flexInt(n)
	return nil
}

// Search returns the products matching a granule list.
func (c *Client) Search(ctx context.Context, granules ...string) ([]Properties, error) {
	params := url.Values{}
	params.Set("granule_list", strings.Join(granules, ","))
	params.Set("output", "geojson")

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ASF API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var fc FeatureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	out := make([]Properties, 0, len(fc.Features))
	for _, f := range fc.Features {
		out = append(out, f.Properties)
	}
	return out, nil
}

// GranuleMetadata resolves the path number and flight direction of a
// granule from its first matching product.
func (c *Client) GranuleMetadata(ctx context.Context, granule string) (jobs.GranuleMetadata, error) {
	props, err := c.Search(ctx, granule)
	if err != nil {
		return jobs.GranuleMetadata{}, err
	}
	if len(props) == 0 {
		return jobs.GranuleMetadata{}, fmt.Errorf("%s: %w", granule, ErrNotFound)
	}
	p := props[0]
	dir, ok := jobs.ParseOrbitDirection(p.FlightDirection)
	if !ok {
		return jobs.GranuleMetadata{}, fmt.Errorf("%s: unknown flight direction %q", granule, p.FlightDirection)
	}
	return jobs.GranuleMetadata{Path: int(p.PathNumber), OrbitDirection: dir}, nil
}

var _ jobs.MetadataLookup = (*Client)(nil)
