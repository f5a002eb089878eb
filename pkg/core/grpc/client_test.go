package grpc

import (
	"context"
	"testing"
	"time"
)

func TestNormalizeTarget(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain host:port", "localhost:50051", "localhost:50051"},
		{"http scheme", "http://127.0.0.1:50051", "127.0.0.1:50051"},
		{"https scheme", "https://tools.lab:50051", "tools.lab:50051"},
		{"grpc scheme", "grpc://127.0.0.1:50051", "127.0.0.1:50051"},
		{"trailing slash", "http://127.0.0.1:50051/", "127.0.0.1:50051"},
		{"dns target untouched", "dns:///tools.lab:50051", "dns:///tools.lab:50051"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTarget(tt.input); got != tt.expected {
				t.Errorf("NormalizeTarget(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultClientConfig(t *testing.T) {
	cfg := DefaultClientConfig("localhost:50051")

	if cfg.Target != "localhost:50051" {
		t.Errorf("Target = %q, want localhost:50051", cfg.Target)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.Block {
		t.Error("Block should default to true for a one-shot CLI")
	}
	if cfg.MaxRecvMsgSize != 16*1024*1024 {
		t.Errorf("MaxRecvMsgSize = %d, want 16MB", cfg.MaxRecvMsgSize)
	}
}

func TestDial_UnreachableAddress(t *testing.T) {
	cfg := DefaultClientConfig("127.0.0.1:1")
	cfg.Timeout = 200 * time.Millisecond

	conn, err := Dial(cfg)
	if err == nil {
		conn.Close()
		t.Fatal("Dial should fail against an unreachable address with Block set")
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID on empty context = %q, want empty", got)
	}

	ctx = WithRequestID(ctx, "abc-123")
	if got := GetRequestID(ctx); got != "abc-123" {
		t.Errorf("GetRequestID = %q, want abc-123", got)
	}
}
