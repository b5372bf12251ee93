package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestForAssessment(t *testing.T) {
	logs := observe(t)

	ForAssessment("0190a9c4-7d1e-7000-8000-000000000000").Infow("assessment run completed", "assessment_result", "eligible")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["assessment_id"] != "0190a9c4-7d1e-7000-8000-000000000000" {
		t.Errorf("expected assessment_id field, got %v", fields)
	}
	if fields["assessment_result"] != "eligible" {
		t.Errorf("expected assessment_result field, got %v", fields)
	}
}

func TestForRequest(t *testing.T) {
	logs := observe(t)

	ForRequest("req-1", "POST", "/api/v1/assessments").Warn("slow")

	entries := logs.FilterMessage("slow").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	for key, want := range map[string]string{"request_id": "req-1", "method": "POST", "path": "/api/v1/assessments"} {
		if fields[key] != want {
			t.Errorf("expected %s=%s, got %v", key, want, fields[key])
		}
	}
}

func TestReplace_Restores(t *testing.T) {
	logs := observe(t)

	restore := Replace(zap.NewNop())
	Get().Info("dropped")
	restore()
	Get().Info("kept")

	if logs.Len() != 1 || logs.All()[0].Message != "kept" {
		t.Errorf("expected only the entry after restore, got %v", logs.All())
	}
}

func TestInit_Test(t *testing.T) {
	t.Cleanup(Replace(zap.NewNop()))

	Init("test")
	if Get().Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected the test logger to discard everything")
	}
}
