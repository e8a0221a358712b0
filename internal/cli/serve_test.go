package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/layerlens/layerlens/pkg/errors"
	"github.com/layerlens/layerlens/pkg/store"
)

// stubReporter returns canned verification data.
type stubReporter struct {
	report     *store.Report
	namespaces []string
	err        error
}

func (s *stubReporter) Verify(ctx context.Context, namespace string) (*store.Report, error) {
	if s.err != nil {
		return nil, s.err
	}
	rep := *s.report
	rep.Namespace = namespace
	return &rep, nil
}

func (s *stubReporter) Namespaces(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.namespaces, nil
}

func TestRouter_Healthz(t *testing.T) {
	srv := httptest.NewServer(newRouter(&stubReporter{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRouter_Verify(t *testing.T) {
	stub := &stubReporter{report: &store.Report{Packages: 3, Layers: 2, BelongsTo: 2, DependsOn: 4}}
	srv := httptest.NewServer(newRouter(stub))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/verify?namespace=release-a")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got store.Report
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Namespace != "release-a" {
		t.Errorf("Namespace = %q, want release-a", got.Namespace)
	}
	if got.Packages != 3 || got.DependsOn != 4 {
		t.Errorf("counts = %+v", got)
	}
}

func TestRouter_VerifyError(t *testing.T) {
	stub := &stubReporter{err: errors.New(errors.ErrCodeStoreQuery, "connection reset")}
	srv := httptest.NewServer(newRouter(stub))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/verify")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestRouter_Namespaces(t *testing.T) {
	stub := &stubReporter{namespaces: []string{"release-a", "release-b"}}
	srv := httptest.NewServer(newRouter(stub))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/namespaces")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got["namespaces"]) != 2 || got["namespaces"][0] != "release-a" {
		t.Errorf("namespaces = %v", got["namespaces"])
	}
}
