package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/config"
)

// fakeSubmitBackend is a minimal TestRail double for handler tests. It only
// implements the bulk add_results route and can be told to reject one
// specific request so a single batch fails mid-run.
type fakeSubmitBackend struct {
	mu       sync.Mutex
	calls    int
	failCall int // 1-based request index to reject, 0 rejects nothing
}

func (f *fakeSubmitBackend) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/index.php", func(c *gin.Context) {
		f.mu.Lock()
		f.calls++
		call := f.calls
		fail := f.failCall
		f.mu.Unlock()

		if !strings.HasPrefix(c.Request.URL.RawQuery, "/api/v2/add_results/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown API path"})
			return
		}
		if call == fail {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Field :results is not a valid list"})
			return
		}
		c.JSON(http.StatusOK, []gin.H{})
	})
	return r
}

func (f *fakeSubmitBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func writeSubmitFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-results.json")
	content := `[
		{"case_id": 101, "status": "passed"},
		{"case_id": 102, "status": "passed"},
		{"case_id": 103, "status": "failed", "comment": "timeout"},
		{"case_id": 104, "status": "blocked"},
		{"case_id": 105, "status": "passed"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// setupSubmitTest points the submit configuration at the fake backend with
// five records in batches of two, so a full run costs three requests.
func setupSubmitTest(t *testing.T, failCall int) *fakeSubmitBackend {
	t.Helper()

	fake := &fakeSubmitBackend{failCall: failCall}
	srv := httptest.NewServer(fake.router())
	t.Cleanup(srv.Close)

	config.Global.Output = "json"
	config.Global.LogLevel = "ERROR"
	config.Global.Timeout = 5
	config.Global.Verbose = false

	config.Submit.Provider = config.ProviderTestRail
	config.Submit.Input = writeSubmitFixture(t)
	config.Submit.BatchSize = 2
	config.Submit.RunID = 7
	config.Submit.BaseURL = srv.URL
	config.Submit.Email = "automation@example.com"
	config.Submit.APIKey = "secret-api-key"
	config.Submit.PlanID = 0
	config.Submit.BuildID = 0
	config.Submit.Endpoint = ""
	config.Submit.DevKey = ""

	return fake
}

func TestHandleSubmitAllBatchesSucceed(t *testing.T) {
	fake := setupSubmitTest(t, 0)

	if err := HandleSubmit(nil, nil); err != nil {
		t.Fatalf("expected nil error when every batch succeeds, got: %v", err)
	}
	if fake.callCount() != 3 {
		t.Errorf("expected 3 bulk requests for 5 records at batch size 2, got %d", fake.callCount())
	}
}

func TestHandleSubmitFailedBatchExitsNonZero(t *testing.T) {
	fake := setupSubmitTest(t, 2)

	err := HandleSubmit(nil, nil)
	if err == nil {
		t.Fatal("expected error when a batch fails")
	}
	if !strings.Contains(err.Error(), "1 of 3 batches failed") {
		t.Errorf("expected failed-batch count in error, got: %v", err)
	}
	// The failed second batch must not stop the third from being sent.
	if fake.callCount() != 3 {
		t.Errorf("expected all 3 bulk requests despite one failure, got %d", fake.callCount())
	}
}

func TestHandleSubmitInvalidProvider(t *testing.T) {
	setupSubmitTest(t, 0)
	config.Submit.Provider = "jira"

	err := HandleSubmit(nil, nil)
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "invalid provider") {
		t.Errorf("expected provider error, got: %v", err)
	}
}

func TestHandleSubmitMissingInputFile(t *testing.T) {
	setupSubmitTest(t, 0)
	config.Submit.Input = filepath.Join(t.TempDir(), "absent.json")

	if err := HandleSubmit(nil, nil); err == nil {
		t.Fatal("expected error for missing results file")
	}
}
