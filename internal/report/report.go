// Package report computes the comparative metrics between TestRail's
// REST/JSON API and TestLink's XML-RPC API for automated result reporting.
//
// The comparison rests on three measurable axes plus one qualitative one:
//
// PAYLOAD SIZE:
//   - TestRail: the actual JSON request body for one result, marshaled with
//     encoding/json
//   - TestLink: the actual XML-RPC methodCall envelope for the same result
//
// REQUEST COUNT:
//   - TestRail: ceil(N/K) bulk requests for N results at batch size K
//   - TestLink: N requests, one tl.reportTCResult call per result
//
// PIPELINE LATENCY:
//   - Both modeled as requests multiplied by a fixed round-trip time, the
//     dominant cost in CI reporting
//
// DEVELOPER EXPERIENCE:
//   - A fixed matrix of qualitative aspects (auth model, data format,
//     bulk support, tooling)
//
// Build assembles all four into a Comparison ready for table or JSON
// rendering.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/batch"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/results"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/testrail"
)

// Defaults for the pipeline simulation. A thousand-test suite reported in
// batches of a hundred over a 50ms link is a typical mid-size CI run.
const (
	DefaultResultCount = 1000
	DefaultBatchSize   = 100
	DefaultLatencyMS   = 50
)

// Params configures a comparison run.
type Params struct {
	ResultCount int `json:"result_count"`
	BatchSize   int `json:"batch_size"`
	LatencyMS   int `json:"latency_ms"`
}

// Validate checks the parameters are usable for metric computation.
func (p Params) Validate() error {
	if p.ResultCount <= 0 {
		return fmt.Errorf("result count must be positive, got %d", p.ResultCount)
	}
	if p.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", p.BatchSize)
	}
	if p.LatencyMS <= 0 {
		return fmt.Errorf("latency must be positive, got %dms", p.LatencyMS)
	}
	return nil
}

// DefaultParams returns the standard simulation parameters.
func DefaultParams() Params {
	return Params{
		ResultCount: DefaultResultCount,
		BatchSize:   DefaultBatchSize,
		LatencyMS:   DefaultLatencyMS,
	}
}

// PayloadMetrics holds measured request body sizes for one test result
// submitted to each backend.
type PayloadMetrics struct {
	JSONBytes int     `json:"json_bytes"`
	XMLBytes  int     `json:"xml_bytes"`
	Ratio     float64 `json:"ratio"` // XML size relative to JSON
}

// RequestMetrics holds request counts for reporting N results at batch
// size K against each backend.
type RequestMetrics struct {
	ResultCount      int `json:"result_count"`
	BatchSize        int `json:"batch_size"`
	TestRailRequests int `json:"testrail_requests"`
	TestLinkRequests int `json:"testlink_requests"`
	ExtraRequests    int `json:"extra_requests"`
}

// PipelineMetrics holds the simulated wall-clock reporting time for a
// CI pipeline, with each request costing one fixed round trip.
type PipelineMetrics struct {
	LatencyMS    int           `json:"latency_ms"`
	TestRailTime time.Duration `json:"testrail_time"`
	TestLinkTime time.Duration `json:"testlink_time"`
	TimeSaved    time.Duration `json:"time_saved"`
	Speedup      float64       `json:"speedup"`
}

// DXRow is one qualitative aspect of the developer experience matrix.
type DXRow struct {
	Aspect   string `json:"aspect"`
	TestRail string `json:"testrail"`
	TestLink string `json:"testlink"`
}

// Comparison is the full assembled report.
type Comparison struct {
	Params   Params          `json:"params"`
	Payload  PayloadMetrics  `json:"payload"`
	Requests RequestMetrics  `json:"requests"`
	Pipeline PipelineMetrics `json:"pipeline"`
	DXMatrix []DXRow         `json:"dx_matrix"`
}

// sampleResult is the representative record both payloads are built from,
// so the size comparison measures encoding overhead and nothing else.
func sampleResult() results.TestResult {
	return results.TestResult{
		CaseID:  1042,
		Status:  results.StatusPassed,
		Comment: "All assertions passed",
		Elapsed: "2s",
	}
}

// ComputePayloadMetrics measures the real wire size of one result for each
// protocol. The JSON body is produced by the same marshaling path the
// TestRail client uses. The XML-RPC envelope is built field by field in the
// shape kolo/xmlrpc emits for tl.reportTCResult.
func ComputePayloadMetrics() (PayloadMetrics, error) {
	record := sampleResult()

	body, err := json.Marshal(testrail.FromRecord(record))
	if err != nil {
		return PayloadMetrics{}, fmt.Errorf("failed to marshal JSON payload: %w", err)
	}

	envelope := xmlrpcEnvelope("tl.reportTCResult", []xmlrpcMember{
		{"devKey", "string", "0123456789abcdef0123456789abcdef"},
		{"testcaseid", "int", fmt.Sprintf("%d", record.CaseID)},
		{"testplanid", "int", "12"},
		{"buildid", "int", "3"},
		{"status", "string", "p"},
		{"notes", "string", record.Comment},
		{"overwrite", "boolean", "1"},
	})

	m := PayloadMetrics{
		JSONBytes: len(body),
		XMLBytes:  len(envelope),
	}
	m.Ratio = float64(m.XMLBytes) / float64(m.JSONBytes)
	return m, nil
}

type xmlrpcMember struct {
	name  string
	typ   string
	value string
}

// xmlrpcEnvelope renders a methodCall document with a single struct
// parameter, the request shape every TestLink operation uses.
func xmlrpcEnvelope(method string, members []xmlrpcMember) string {
	s := `<?xml version="1.0"?><methodCall><methodName>` + method + `</methodName>` +
		`<params><param><value><struct>`
	for _, m := range members {
		s += `<member><name>` + m.name + `</name><value><` + m.typ + `>` +
			m.value + `</` + m.typ + `></value></member>`
	}
	s += `</struct></value></param></params></methodCall>`
	return s
}

// ComputeRequestMetrics derives per-protocol request counts. TestRail
// accepts a whole batch per add_results call; TestLink needs one call per
// result no matter the batch size.
func ComputeRequestMetrics(resultCount, batchSize int) RequestMetrics {
	restRequests := batch.Count(resultCount, batchSize)
	return RequestMetrics{
		ResultCount:      resultCount,
		BatchSize:        batchSize,
		TestRailRequests: restRequests,
		TestLinkRequests: resultCount,
		ExtraRequests:    resultCount - restRequests,
	}
}

// ComputePipelineMetrics simulates total reporting time with each request
// costing one fixed round trip.
func ComputePipelineMetrics(requests RequestMetrics, latencyMS int) PipelineMetrics {
	rtt := time.Duration(latencyMS) * time.Millisecond
	m := PipelineMetrics{
		LatencyMS:    latencyMS,
		TestRailTime: time.Duration(requests.TestRailRequests) * rtt,
		TestLinkTime: time.Duration(requests.TestLinkRequests) * rtt,
	}
	m.TimeSaved = m.TestLinkTime - m.TestRailTime
	if m.TestRailTime > 0 {
		m.Speedup = float64(m.TestLinkTime) / float64(m.TestRailTime)
	}
	return m
}

// DXMatrix returns the qualitative developer experience comparison.
func DXMatrix() []DXRow {
	return []DXRow{
		{"Protocol", "REST over HTTPS", "XML-RPC over HTTP(S)"},
		{"Data format", "JSON", "XML"},
		{"Authentication", "HTTP basic auth (email + API key)", "Developer key in every payload"},
		{"Bulk submission", "Native (add_results)", "None, one call per result"},
		{"Error reporting", "HTTP status codes + JSON error body", "Faults and status=false response structs"},
		{"API exploration", "Browsable, documented REST routes", "Method catalog in PHP source"},
		{"Client ecosystem", "Any HTTP client", "Needs an XML-RPC library"},
		{"Client code footprint", "Thin wrapper, one call per operation", "Thicker wrapper hiding XML-RPC plumbing and status letters"},
	}
}

// Build assembles the full comparison for the given parameters.
func Build(p Params) (*Comparison, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comparison parameters: %w", err)
	}

	payload, err := ComputePayloadMetrics()
	if err != nil {
		return nil, err
	}

	requests := ComputeRequestMetrics(p.ResultCount, p.BatchSize)
	pipeline := ComputePipelineMetrics(requests, p.LatencyMS)

	return &Comparison{
		Params:   p,
		Payload:  payload,
		Requests: requests,
		Pipeline: pipeline,
		DXMatrix: DXMatrix(),
	}, nil
}
