package report

import (
	"strings"
	"testing"
	"time"
)

func TestComputePayloadMetrics(t *testing.T) {
	m, err := ComputePayloadMetrics()
	if err != nil {
		t.Fatalf("ComputePayloadMetrics failed: %v", err)
	}

	if m.JSONBytes <= 0 {
		t.Errorf("expected positive JSON size, got %d", m.JSONBytes)
	}
	if m.XMLBytes <= m.JSONBytes {
		t.Errorf("expected XML envelope (%d bytes) to exceed JSON body (%d bytes)",
			m.XMLBytes, m.JSONBytes)
	}
	if m.Ratio <= 1.0 {
		t.Errorf("expected ratio above 1.0, got %f", m.Ratio)
	}
}

func TestXMLRPCEnvelopeShape(t *testing.T) {
	envelope := xmlrpcEnvelope("tl.reportTCResult", []xmlrpcMember{
		{"devKey", "string", "abc"},
		{"testcaseid", "int", "42"},
	})

	for _, want := range []string{
		"<methodCall>",
		"<methodName>tl.reportTCResult</methodName>",
		"<name>devKey</name>",
		"<int>42</int>",
		"</methodCall>",
	} {
		if !strings.Contains(envelope, want) {
			t.Errorf("envelope missing %q", want)
		}
	}
}

func TestComputeRequestMetrics(t *testing.T) {
	tests := []struct {
		name             string
		resultCount      int
		batchSize        int
		expectedTestRail int
		expectedTestLink int
	}{
		{name: "even split", resultCount: 1000, batchSize: 100, expectedTestRail: 10, expectedTestLink: 1000},
		{name: "remainder batch", resultCount: 25, batchSize: 10, expectedTestRail: 3, expectedTestLink: 25},
		{name: "batch larger than results", resultCount: 5, batchSize: 100, expectedTestRail: 1, expectedTestLink: 5},
		{name: "batch size one", resultCount: 7, batchSize: 1, expectedTestRail: 7, expectedTestLink: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeRequestMetrics(tt.resultCount, tt.batchSize)
			if m.TestRailRequests != tt.expectedTestRail {
				t.Errorf("expected %d TestRail requests, got %d", tt.expectedTestRail, m.TestRailRequests)
			}
			if m.TestLinkRequests != tt.expectedTestLink {
				t.Errorf("expected %d TestLink requests, got %d", tt.expectedTestLink, m.TestLinkRequests)
			}
			if m.ExtraRequests != tt.expectedTestLink-tt.expectedTestRail {
				t.Errorf("expected %d extra requests, got %d",
					tt.expectedTestLink-tt.expectedTestRail, m.ExtraRequests)
			}
		})
	}
}

func TestComputePipelineMetrics(t *testing.T) {
	requests := ComputeRequestMetrics(1000, 100)
	m := ComputePipelineMetrics(requests, 50)

	if m.TestRailTime != 500*time.Millisecond {
		t.Errorf("expected TestRail time 500ms, got %v", m.TestRailTime)
	}
	if m.TestLinkTime != 50*time.Second {
		t.Errorf("expected TestLink time 50s, got %v", m.TestLinkTime)
	}
	if m.TimeSaved != m.TestLinkTime-m.TestRailTime {
		t.Errorf("expected time saved %v, got %v", m.TestLinkTime-m.TestRailTime, m.TimeSaved)
	}
	if m.Speedup != 100.0 {
		t.Errorf("expected 100x speedup, got %f", m.Speedup)
	}
}

func TestBuild(t *testing.T) {
	comparison, err := Build(DefaultParams())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if comparison.Requests.TestRailRequests != 10 {
		t.Errorf("expected 10 TestRail requests with defaults, got %d",
			comparison.Requests.TestRailRequests)
	}
	if len(comparison.DXMatrix) == 0 {
		t.Error("expected non-empty DX matrix")
	}
}

func TestDXMatrixCoversHeadlineAspects(t *testing.T) {
	aspects := make(map[string]bool)
	for _, row := range DXMatrix() {
		aspects[row.Aspect] = true
	}

	for _, want := range []string{
		"Data format",
		"Authentication",
		"Bulk submission",
		"Client code footprint",
	} {
		if !aspects[want] {
			t.Errorf("DX matrix missing aspect %q", want)
		}
	}
}

func TestBuildRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{name: "zero results", params: Params{ResultCount: 0, BatchSize: 10, LatencyMS: 50}},
		{name: "negative batch size", params: Params{ResultCount: 100, BatchSize: -1, LatencyMS: 50}},
		{name: "zero latency", params: Params{ResultCount: 100, BatchSize: 10, LatencyMS: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.params); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
