package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveIdentifierFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "query" || q.Get("ppprop") != "wikibase_item" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("titles") != "ירושלים" {
			t.Errorf("unexpected title: %s", q.Get("titles"))
		}
		_, _ = w.Write([]byte(`{"query":{"pages":{"1234":{"pageprops":{"wikibase_item":"Q1218"}}}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "WikiCollector/1.0", server.Client())
	id, ok, err := client.ResolveIdentifier(context.Background(), "ירושלים")
	if err != nil {
		t.Fatalf("ResolveIdentifier error: %v", err)
	}
	if !ok || id != "Q1218" {
		t.Fatalf("expected Q1218, got %q (ok=%v)", id, ok)
	}
}

func TestResolveIdentifierMissingPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query":{"pages":{"-1":{"missing":""}}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "WikiCollector/1.0", server.Client())
	id, ok, err := client.ResolveIdentifier(context.Background(), "No Such Page")
	if err != nil {
		t.Fatalf("ResolveIdentifier error: %v", err)
	}
	if ok || id != "" {
		t.Fatalf("expected absence, got %q (ok=%v)", id, ok)
	}
}

func TestResolveIdentifierNoItemProp(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query":{"pages":{"77":{"pageprops":{}}}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "WikiCollector/1.0", server.Client())
	_, ok, err := client.ResolveIdentifier(context.Background(), "Unlinked Page")
	if err != nil {
		t.Fatalf("ResolveIdentifier error: %v", err)
	}
	if ok {
		t.Fatal("expected absence for page without wikibase item")
	}
}

func TestResolveIdentifierServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "WikiCollector/1.0", server.Client())
	if _, _, err := client.ResolveIdentifier(context.Background(), "Any"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestResolveIdentifierMalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "WikiCollector/1.0", server.Client())
	if _, _, err := client.ResolveIdentifier(context.Background(), "Any"); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
