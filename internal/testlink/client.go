// Package testlink implements the XML-RPC client for the TestLink API.
//
// TestLink exposes a legacy XML-RPC surface at lib/api/xmlrpc/v1/xmlrpc.php
// with the developer key embedded in every request payload. The protocol has
// no bulk submission: tl.reportTCResult accepts exactly one result, so
// reporting N results costs N round-trips. The batch submitter below makes
// that explicit by looping client-side over each batch, which is precisely
// the overhead the comparison report quantifies against TestRail's native
// bulk endpoint.
//
// CLIENT ARCHITECTURE:
//   - Transport: kolo/xmlrpc over an http.Transport with dial and response
//     header timeouts
//   - Authentication: devKey injected into each request struct
//   - Error handling: XML-RPC faults and TestLink's status=false responses
//     both surface as wrapped errors
//
// SUPPORTED OPERATIONS:
//   - ReportResult: tl.reportTCResult with overwrite semantics
//   - GetTestCase / GetTestPlan: read endpoints for verification workflows
//
// The friendly status mapping (passed/failed/blocked -> p/f/b) lives in
// StatusCode so callers never handle TestLink's single-letter encoding.
package testlink

import (
	"fmt"
	"net"
	"net/http"

	"github.com/kolo/xmlrpc"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/batch"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/logging"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/results"
)

// TestLink single-letter status codes as accepted by tl.reportTCResult.
const (
	CodePassed  = "p"
	CodeFailed  = "f"
	CodeBlocked = "b"
)

// StatusCode maps a neutral result status onto TestLink's single-letter
// encoding. TestLink has no representation for untested or retest outcomes;
// records carrying those fail the mapping instead of being silently
// reported as passed.
func StatusCode(s results.Status) (string, error) {
	switch s {
	case results.StatusPassed:
		return CodePassed, nil
	case results.StatusFailed:
		return CodeFailed, nil
	case results.StatusBlocked:
		return CodeBlocked, nil
	default:
		return "", fmt.Errorf("status %q has no TestLink encoding", s)
	}
}

// Report is one result submission for tl.reportTCResult.
type Report struct {
	TestCaseID int
	TestPlanID int
	BuildID    int
	Status     string // TestLink letter code, see StatusCode
	Notes      string
}

// reportRequest is the XML-RPC wire struct for tl.reportTCResult. Overwrite
// is always set so re-running a pipeline updates results instead of
// stacking duplicates, matching the original integration behavior.
type reportRequest struct {
	DevKey     string `xmlrpc:"devKey"`
	TestCaseID int    `xmlrpc:"testcaseid"`
	TestPlanID int    `xmlrpc:"testplanid"`
	BuildID    int    `xmlrpc:"buildid"`
	Status     string `xmlrpc:"status"`
	Notes      string `xmlrpc:"notes"`
	Overwrite  bool   `xmlrpc:"overwrite"`
}

// ReportOutcome is TestLink's response for one reported result. TestLink
// returns identifiers as strings on this endpoint.
type ReportOutcome struct {
	ID        string `xmlrpc:"id"`
	Status    bool   `xmlrpc:"status"`
	Operation string `xmlrpc:"operation"`
	Message   string `xmlrpc:"message"`
	Code      int    `xmlrpc:"code"`
}

// TestCase represents a test case as returned by tl.getTestCase.
type TestCase struct {
	ID      string `xmlrpc:"id"`
	Name    string `xmlrpc:"name"`
	Summary string `xmlrpc:"summary"`
}

// TestPlan represents a test plan as returned by tl.getTestPlanByID.
type TestPlan struct {
	ID     string `xmlrpc:"id"`
	Name   string `xmlrpc:"name"`
	Active string `xmlrpc:"active"`
	Notes  string `xmlrpc:"notes"`
}

// Client communicates with one TestLink instance over XML-RPC. Construct
// with NewClient; the zero value is not usable.
type Client struct {
	rpc      *xmlrpc.Client
	devKey   string
	endpoint string
}

// NewClient creates a TestLink API client from an explicit configuration.
// The underlying transport carries dial and response header timeouts since
// the XML-RPC layer has no timeout handling of its own.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid TestLink config: %w", err)
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.effectiveTimeout(),
		}).DialContext,
		ResponseHeaderTimeout: cfg.effectiveTimeout(),
	}

	rpc, err := xmlrpc.NewClient(cfg.Endpoint, transport)
	if err != nil {
		return nil, fmt.Errorf("failed to create XML-RPC client for %s: %w", cfg.Endpoint, err)
	}

	return &Client{
		rpc:      rpc,
		devKey:   cfg.DevKey,
		endpoint: cfg.Endpoint,
	}, nil
}

// Close releases the underlying XML-RPC connection.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// ReportResult reports one test result via tl.reportTCResult. TestLink
// signals application-level failures (bad dev key, unknown test case) with
// status=false responses rather than XML-RPC faults, so both paths are
// checked.
func (c *Client) ReportResult(rep Report) (*ReportOutcome, error) {
	req := reportRequest{
		DevKey:     c.devKey,
		TestCaseID: rep.TestCaseID,
		TestPlanID: rep.TestPlanID,
		BuildID:    rep.BuildID,
		Status:     rep.Status,
		Notes:      rep.Notes,
		Overwrite:  true,
	}

	logging.Debug("TestLink: tl.reportTCResult case=%d plan=%d build=%d status=%s",
		rep.TestCaseID, rep.TestPlanID, rep.BuildID, rep.Status)

	var outcomes []ReportOutcome
	if err := c.rpc.Call("tl.reportTCResult", req, &outcomes); err != nil {
		return nil, fmt.Errorf("XML-RPC call to %s failed: %w", c.endpoint, err)
	}
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("empty response from tl.reportTCResult")
	}

	outcome := outcomes[0]
	if !outcome.Status {
		return nil, fmt.Errorf("TestLink rejected result for case %d: %s (code %d)",
			rep.TestCaseID, outcome.Message, outcome.Code)
	}

	return &outcome, nil
}

// GetTestCase fetches a test case via tl.getTestCase.
func (c *Client) GetTestCase(testCaseID int) (*TestCase, error) {
	req := struct {
		DevKey     string `xmlrpc:"devKey"`
		TestCaseID int    `xmlrpc:"testcaseid"`
	}{DevKey: c.devKey, TestCaseID: testCaseID}

	var cases []TestCase
	if err := c.rpc.Call("tl.getTestCase", req, &cases); err != nil {
		return nil, fmt.Errorf("XML-RPC call to %s failed: %w", c.endpoint, err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("test case %d not found", testCaseID)
	}

	return &cases[0], nil
}

// GetTestPlan fetches a test plan via tl.getTestPlanByID.
func (c *Client) GetTestPlan(testPlanID int) (*TestPlan, error) {
	req := struct {
		DevKey     string `xmlrpc:"devKey"`
		TestPlanID int    `xmlrpc:"testplanid"`
	}{DevKey: c.devKey, TestPlanID: testPlanID}

	var plan TestPlan
	if err := c.rpc.Call("tl.getTestPlanByID", req, &plan); err != nil {
		return nil, fmt.Errorf("XML-RPC call to %s failed: %w", c.endpoint, err)
	}

	return &plan, nil
}

// BatchSubmitter adapts the call-per-result protocol to the batch submission
// core. TestLink has no bulk endpoint, so each batch of records costs one
// XML-RPC round-trip per record; the first failed call fails the batch. Side
// effects are sequential within the batch, matching the client-side loop the
// protocol forces on every integration.
func (c *Client) BatchSubmitter(testPlanID, buildID int) batch.SubmitFunc[results.TestResult] {
	return func(records []results.TestResult) error {
		for i, r := range records {
			code, err := StatusCode(r.Status)
			if err != nil {
				return fmt.Errorf("record %d of %d: %w", i+1, len(records), err)
			}

			_, err = c.ReportResult(Report{
				TestCaseID: r.CaseID,
				TestPlanID: testPlanID,
				BuildID:    buildID,
				Status:     code,
				Notes:      r.Comment,
			})
			if err != nil {
				return fmt.Errorf("record %d of %d: %w", i+1, len(records), err)
			}
		}

		logging.Debug("TestLink: reported %d results in %d individual requests",
			len(records), len(records))
		return nil
	}
}
