package tooldriver

import (
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	pb "github.com/foundry-science/toolctl/api/gen/tooldriver"
	coreerrors "github.com/foundry-science/toolctl/pkg/core/errors"
)

func replyWithMeta(code int32, fields map[string]*structpb.Value) *pb.CommandReply {
	reply := &pb.CommandReply{Response: code}
	if fields != nil {
		reply.MetaData = &structpb.Struct{Fields: fields}
	}
	return reply
}

func TestDecodeScriptReply_Success(t *testing.T) {
	tests := []struct {
		name     string
		reply    *pb.CommandReply
		expected string
	}{
		{
			"no metadata",
			replyWithMeta(commandSuccess, nil),
			noOutput,
		},
		{
			"metadata without response key",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"duration_ms": structpb.NewNumberValue(12),
			}),
			noOutput,
		},
		{
			"string value",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"response": structpb.NewStringValue("Hello from the toolbox"),
			}),
			"Hello from the toolbox",
		},
		{
			"integer-valued number",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"response": structpb.NewNumberValue(2),
			}),
			"2",
		},
		{
			"whole float collapses",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"response": structpb.NewNumberValue(100.0),
			}),
			"100",
		},
		{
			"fractional number",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"response": structpb.NewNumberValue(2.5),
			}),
			"2.5",
		},
		{
			"bool true",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"response": structpb.NewBoolValue(true),
			}),
			"true",
		},
		{
			"bool false",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"response": structpb.NewBoolValue(false),
			}),
			"false",
		},
		{
			"null value",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"response": structpb.NewNullValue(),
			}),
			"null",
		},
		{
			"empty value kind treated as no output",
			replyWithMeta(commandSuccess, map[string]*structpb.Value{
				"response": {},
			}),
			noOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeScriptReply(tt.reply)
			if err != nil {
				t.Fatalf("decodeScriptReply() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("decodeScriptReply() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDecodeScriptReply_NestedValueDumped(t *testing.T) {
	nested, err := structpb.NewValue(map[string]interface{}{"stdout": "ok"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := decodeScriptReply(replyWithMeta(commandSuccess, map[string]*structpb.Value{
		"response": nested,
	}))
	if err != nil {
		t.Fatalf("decodeScriptReply() error = %v", err)
	}
	if !strings.Contains(got, "stdout") {
		t.Errorf("nested value dump %q should mention its contents", got)
	}
}

func TestDecodeScriptReply_Failure(t *testing.T) {
	tests := []struct {
		name     string
		reply    *pb.CommandReply
		contains []string
	}{
		{
			"failure with message",
			&pb.CommandReply{Response: 5, ErrorMessage: "NameError: name 'foo' is not defined"},
			[]string{"code 5", "NameError: name 'foo' is not defined"},
		},
		{
			"failure without message",
			&pb.CommandReply{Response: 0},
			[]string{"code 0"},
		},
		{
			"failure ignores metadata",
			replyWithMeta(2, map[string]*structpb.Value{
				"response": structpb.NewStringValue("stale"),
			}),
			[]string{"code 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeScriptReply(tt.reply)
			if err == nil {
				t.Fatalf("decodeScriptReply() = %q, want error", got)
			}
			if !coreerrors.HasCode(err, coreerrors.CodeScriptExecution) {
				t.Errorf("error should carry CodeScriptExecution, got %v", coreerrors.CodeOf(err))
			}
			for _, want := range tt.contains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q missing %q", err.Error(), want)
				}
			}
		})
	}
}

func TestNewRunScriptCommand(t *testing.T) {
	cmd := newRunScriptCommand("print(1)", true)

	toolbox := cmd.GetToolbox()
	if toolbox == nil {
		t.Fatal("envelope should carry the toolbox variant")
	}
	script := toolbox.GetRunScript()
	if script == nil {
		t.Fatal("toolbox command should carry the run_script variant")
	}
	if script.GetScriptContent() != "print(1)" {
		t.Errorf("ScriptContent = %q, want print(1)", script.GetScriptContent())
	}
	if !script.GetBlocking() {
		t.Error("Blocking should be true")
	}
	if cmd.GetBravo() != nil {
		t.Error("only one tool variant may be populated")
	}
}

func TestNewRunScriptCommand_Deterministic(t *testing.T) {
	a := newRunScriptCommand("print(1)", true)
	b := newRunScriptCommand("print(1)", true)

	if !proto.Equal(a, b) {
		t.Error("identical inputs must construct identical envelopes")
	}

	c := newRunScriptCommand("print(2)", true)
	if proto.Equal(a, c) {
		t.Error("different scripts must not construct identical envelopes")
	}
}

func TestFormatValue_NumberForms(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{2, "2"},
		{100.0, "100"},
		{-3, "-3"},
		{2.5, "2.5"},
		{1000000, "1000000"},
		{0.125, "0.125"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := formatValue(structpb.NewNumberValue(tt.input))
			if got != tt.expected {
				t.Errorf("formatValue(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Address != "http://127.0.0.1:50051" {
		t.Errorf("Address = %q, want http://127.0.0.1:50051", cfg.Address)
	}
	if cfg.Timeout <= 0 {
		t.Error("Timeout should be positive")
	}
}
