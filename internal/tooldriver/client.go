// ============================================================================
// toolctl - Foundry Lab Tool Control CLI
// ============================================================================
//
// Package:     tooldriver
// Description: Typed gRPC client for the ToolDriver service
// Author:      Foundry Automation
// Created:     2026-08-14
// License:     MIT
// ============================================================================

package tooldriver

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	pb "github.com/foundry-science/toolctl/api/gen/tooldriver"
	coreerrors "github.com/foundry-science/toolctl/pkg/core/errors"
	coregrpc "github.com/foundry-science/toolctl/pkg/core/grpc"
	"github.com/foundry-science/toolctl/pkg/core/logging"
)

// commandSuccess is the success sentinel of CommandReply.response. The value
// comes from the tool-server schema; the client treats it as opaque.
const commandSuccess = 1

// noOutput is returned when a script ran fine but the server attached no
// "response" entry to the reply metadata.
const noOutput = "Script executed (no output)"

// Config holds client configuration
type Config struct {
	Address string
	Timeout time.Duration // connection establishment timeout
}

// DefaultConfig returns default client configuration
func DefaultConfig() Config {
	return Config{
		Address: "http://127.0.0.1:50051",
		Timeout: 30 * time.Second,
	}
}

// Client is a gRPC client for a ToolDriver server. One instance per process;
// calls are issued sequentially and never retried.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ToolDriverClient
	logger *logging.Logger
}

// New dials the tool driver at cfg.Address and binds the stub. The dial
// blocks until the connection is established or the timeout expires.
func New(cfg Config) (*Client, error) {
	logger := logging.New("tooldriver-client")

	dialCfg := coregrpc.DefaultClientConfig(cfg.Address)
	if cfg.Timeout > 0 {
		dialCfg.Timeout = cfg.Timeout
	}

	conn, err := coregrpc.Dial(dialCfg)
	if err != nil {
		return nil, coreerrors.Wrapf(err, coreerrors.CodeConnectionFailed,
			"failed to connect to %s", cfg.Address)
	}

	client := &Client{
		conn:   conn,
		client: pb.NewToolDriverClient(conn),
		logger: logger,
	}

	logger.Info("connected to tool driver", "address", cfg.Address)
	return client, nil
}

// Close closes the client connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Status is the decoded status reply.
type Status struct {
	Status       int32
	Uptime       int64 // seconds since server start
	ErrorMessage string
}

// GetStatus queries the server state. The reply is returned as-is; RPC
// failures are surfaced, not retried.
func (c *Client) GetStatus(ctx context.Context) (*Status, error) {
	resp, err := c.client.GetStatus(ctx, &emptypb.Empty{})
	if err != nil {
		c.logger.Error("GetStatus failed", "error", err)
		return nil, coreerrors.Wrap(err, coreerrors.CodeTransport, "status query failed")
	}

	return &Status{
		Status:       resp.GetStatus(),
		Uptime:       resp.GetUptime(),
		ErrorMessage: resp.GetErrorMessage(),
	}, nil
}

// RunScript sends a script to the toolbox virtual tool and decodes the
// reply to a display string. The blocking flag is carried in the request;
// enforcing it is the server's job. No deadline is added beyond the
// caller's context, so a blocking script may run as long as it needs.
func (c *Client) RunScript(ctx context.Context, script string, blocking bool) (string, error) {
	resp, err := c.client.ExecuteCommand(ctx, newRunScriptCommand(script, blocking))
	if err != nil {
		c.logger.Error("ExecuteCommand failed", "error", err)
		return "", coreerrors.Wrap(err, coreerrors.CodeTransport, "execute command failed")
	}

	return decodeScriptReply(resp)
}

// newRunScriptCommand wraps the script into the toolbox command union and
// that into the generic envelope. Pure construction, no state.
func newRunScriptCommand(script string, blocking bool) *pb.Command {
	return &pb.Command{
		ToolCommand: &pb.Command_Toolbox{
			Toolbox: &pb.ToolboxCommand{
				Command: &pb.ToolboxCommand_RunScript{
					RunScript: &pb.RunScript{
						ScriptContent: script,
						Blocking:      blocking,
					},
				},
			},
		},
	}
}

// decodeScriptReply extracts the display string from a command reply. A
// response code other than the success sentinel is an execution failure;
// missing metadata or a missing "response" key is not an error.
func decodeScriptReply(reply *pb.CommandReply) (string, error) {
	if reply.GetResponse() != commandSuccess {
		if msg := reply.GetErrorMessage(); msg != "" {
			return "", coreerrors.Newf(coreerrors.CodeScriptExecution,
				"script execution failed with code %d: %s", reply.GetResponse(), msg)
		}
		return "", coreerrors.Newf(coreerrors.CodeScriptExecution,
			"script execution failed with code %d", reply.GetResponse())
	}

	value, ok := reply.GetMetaData().GetFields()["response"]
	if !ok || value.GetKind() == nil {
		return noOutput, nil
	}
	return formatValue(value), nil
}

// formatValue converts a dynamically-typed metadata value to display text.
// Precedence: string unchanged, number as decimal text, bool as
// true/false, null as "null", anything else as a textual dump.
func formatValue(v *structpb.Value) string {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(kind.BoolValue)
	case *structpb.Value_NullValue:
		return "null"
	default:
		return v.String()
	}
}
