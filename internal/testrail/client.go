// Package testrail implements the REST/JSON client for the TestRail API.
//
// TestRail exposes a modern REST surface under index.php?/api/v2 with HTTP
// basic authentication (account email + API key) and JSON payloads. Unlike
// the XML-RPC backend, it supports native bulk submission: add_results takes
// a whole slice of results for one test run in a single request, which is
// what makes batched reporting a single round-trip per batch.
//
// CLIENT ARCHITECTURE:
// The Client wraps Resty with toolkit-specific configuration:
//   - Connection management: timeouts and retry on connection errors only
//   - Request/response handling: JSON serialization and status code mapping
//   - Authentication: HTTP basic auth plus User-Agent version tracking
//   - Logging: request/response debug logging through the structured logger
//
// SUPPORTED OPERATIONS:
//   - AddResult: report one result for a single test
//   - AddResults: report a batch of results for a test run (bulk endpoint)
//   - GetTest / GetRun: read endpoints for verification workflows
//
// BatchSubmitter adapts the bulk endpoint to the batch submission core so a
// partitioned run sends exactly one HTTP request per batch.
package testrail

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/batch"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/logging"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/results"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/version"
)

// TestRail status IDs as defined by the add_result API.
const (
	StatusPassed   = 1
	StatusBlocked  = 2
	StatusUntested = 3
	StatusRetest   = 4
	StatusFailed   = 5
)

// StatusID maps a neutral result status onto TestRail's numeric encoding.
// Unknown statuses map to untested rather than silently passing.
func StatusID(s results.Status) int {
	switch s {
	case results.StatusPassed:
		return StatusPassed
	case results.StatusBlocked:
		return StatusBlocked
	case results.StatusRetest:
		return StatusRetest
	case results.StatusFailed:
		return StatusFailed
	default:
		return StatusUntested
	}
}

// Result is the TestRail wire format for one test outcome. TestID is only
// used by the bulk add_results endpoint; single-result submission carries
// the test ID in the URL instead.
type Result struct {
	TestID   int    `json:"test_id,omitempty"`
	StatusID int    `json:"status_id"`
	Comment  string `json:"comment,omitempty"`
	Elapsed  string `json:"elapsed,omitempty"`
}

// FromRecord converts a neutral test result into TestRail's wire format.
func FromRecord(r results.TestResult) Result {
	return Result{
		TestID:   r.CaseID,
		StatusID: StatusID(r.Status),
		Comment:  r.Comment,
		Elapsed:  r.Elapsed,
	}
}

// Test represents a test as returned by get_test.
type Test struct {
	ID       int    `json:"id"`
	CaseID   int    `json:"case_id"`
	RunID    int    `json:"run_id"`
	StatusID int    `json:"status_id"`
	Title    string `json:"title"`
}

// Run represents a test run as returned by get_run, including the per-status
// counts TestRail maintains server-side.
type Run struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ProjectID     int    `json:"project_id"`
	IsCompleted   bool   `json:"is_completed"`
	PassedCount   int    `json:"passed_count"`
	BlockedCount  int    `json:"blocked_count"`
	UntestedCount int    `json:"untested_count"`
	RetestCount   int    `json:"retest_count"`
	FailedCount   int    `json:"failed_count"`
}

// addResultsRequest is the envelope the bulk endpoint expects.
type addResultsRequest struct {
	Results []Result `json:"results"`
}

// restyLogger routes Resty's internal logging through the structured logger.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { logging.Error(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { logging.Warn(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { logging.Debug(format, v...) }

// Client communicates with one TestRail instance. Construct with NewClient;
// the zero value is not usable.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates a TestRail API client from an explicit configuration.
// Configures basic auth, JSON headers, timeouts, retry on connection errors,
// and debug logging of every request and response.
//
// Retries apply only to connection-level failures, never to HTTP error
// responses: a 4xx/5xx reply means the server made a decision and repeating
// the request verbatim would only duplicate results.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid TestRail config: %w", err)
	}

	baseURL := cfg.normalizedBaseURL()

	client := resty.New()
	client.SetLogger(restyLogger{})

	client.
		SetTimeout(cfg.effectiveTimeout()).
		SetBaseURL(baseURL).
		SetBasicAuth(cfg.Email, cfg.APIKey).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("tmreport/%s", version.Version))

	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only retry on connection errors, not HTTP errors
			return err != nil
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("TestRail: %s %s", req.Method, req.URL)
		return nil
	})
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("TestRail: response %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	return &Client{
		http:    client,
		baseURL: baseURL,
	}, nil
}

// checkStatus maps HTTP status codes onto descriptive errors shared by all
// endpoint methods.
func (c *Client) checkStatus(resp *resty.Response, what string) error {
	switch resp.StatusCode() {
	case 200:
		return nil
	case 400:
		return fmt.Errorf("invalid %s request: %s", what, resp.String())
	case 401, 403:
		return fmt.Errorf("TestRail authentication failed for %s: %s", what, resp.String())
	case 404:
		return fmt.Errorf("%s not found: %s", what, resp.String())
	case 429:
		return fmt.Errorf("TestRail rate limit hit on %s: %s", what, resp.String())
	default:
		return fmt.Errorf("%s request failed with status %d: %s",
			what, resp.StatusCode(), resp.String())
	}
}

// AddResult reports one result for a single test via add_result/{test_id}.
// Returns the created result as echoed back by the server.
func (c *Client) AddResult(testID int, result Result) (*Result, error) {
	var created Result

	resp, err := c.http.R().
		SetBody(result).
		SetResult(&created).
		Post(fmt.Sprintf("/index.php?/api/v2/add_result/%d", testID))

	if err != nil {
		return nil, fmt.Errorf("failed to connect to TestRail at %s: %w", c.baseURL, err)
	}
	if err := c.checkStatus(resp, fmt.Sprintf("add_result for test %d", testID)); err != nil {
		return nil, err
	}

	return &created, nil
}

// AddResults reports a whole batch of results for one test run in a single
// request via the bulk add_results/{run_id} endpoint. This is the native
// batch operation that makes TestRail a single round-trip per batch.
func (c *Client) AddResults(runID int, items []Result) ([]Result, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("add_results requires at least one result")
	}

	var created []Result

	resp, err := c.http.R().
		SetBody(addResultsRequest{Results: items}).
		SetResult(&created).
		Post(fmt.Sprintf("/index.php?/api/v2/add_results/%d", runID))

	if err != nil {
		return nil, fmt.Errorf("failed to connect to TestRail at %s: %w", c.baseURL, err)
	}
	if err := c.checkStatus(resp, fmt.Sprintf("add_results for run %d", runID)); err != nil {
		return nil, err
	}

	logging.Debug("TestRail: reported %d results for run %d in one request", len(items), runID)
	return created, nil
}

// GetTest fetches a single test via get_test/{test_id}.
func (c *Client) GetTest(testID int) (*Test, error) {
	var test Test

	resp, err := c.http.R().
		SetResult(&test).
		Get(fmt.Sprintf("/index.php?/api/v2/get_test/%d", testID))

	if err != nil {
		return nil, fmt.Errorf("failed to connect to TestRail at %s: %w", c.baseURL, err)
	}
	if err := c.checkStatus(resp, fmt.Sprintf("test %d", testID)); err != nil {
		return nil, err
	}

	return &test, nil
}

// GetRun fetches a test run via get_run/{run_id}, including server-side
// per-status result counts.
func (c *Client) GetRun(runID int) (*Run, error) {
	var run Run

	resp, err := c.http.R().
		SetResult(&run).
		Get(fmt.Sprintf("/index.php?/api/v2/get_run/%d", runID))

	if err != nil {
		return nil, fmt.Errorf("failed to connect to TestRail at %s: %w", c.baseURL, err)
	}
	if err := c.checkStatus(resp, fmt.Sprintf("run %d", runID)); err != nil {
		return nil, err
	}

	return &run, nil
}

// BatchSubmitter adapts the bulk endpoint to the batch submission core: each
// batch of neutral records becomes exactly one add_results request for the
// given run.
func (c *Client) BatchSubmitter(runID int) batch.SubmitFunc[results.TestResult] {
	return func(records []results.TestResult) error {
		wire := make([]Result, 0, len(records))
		for _, r := range records {
			wire = append(wire, FromRecord(r))
		}
		_, err := c.AddResults(runID, wire)
		return err
	}
}
