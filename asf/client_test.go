package asf

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opensarlab/osl-notebook-kit/domain/jobs"
)

const sampleResponse = `{"type":"FeatureCollection","features":[
 {"type":"Feature","geometry":null,"properties":{
   "sceneName":"S1A_IW_SLC__1SDV_20210101T010203_20210101T010230_036000_043000_ABCD",
   "flightDirection":"DESCENDING","pathNumber":"64","frameNumber":172}}]}`

func TestGranuleMetadata(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClientWithHTTP(srv.URL, srv.Client())
	md, err := c.GranuleMetadata(context.Background(), "S1A_IW_SLC__1SDV_20210101T010203_20210101T010230_036000_043000_ABCD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md.Path != 64 || md.OrbitDirection != jobs.Descending {
		t.Fatalf("unexpected metadata %+v", md)
	}
	if !strings.Contains(gotQuery, "output=geojson") || !strings.Contains(gotQuery, "granule_list=S1A_IW_SLC") {
		t.Fatalf("unexpected query %q", gotQuery)
	}
}

func TestGranuleMetadata_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer srv.Close()

	_, err := NewClientWithHTTP(srv.URL, nil).GranuleMetadata(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch_HTTPErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance window", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClientWithHTTP(srv.URL, nil).Search(context.Background(), "g")
	if err == nil || !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "maintenance window") {
		t.Fatalf("expected status error with body, got %v", err)
	}
}

func TestSearch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClientWithHTTP(srv.URL, nil).Search(ctx, "g"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
