// Package mcp implements a minimal MCP server over JSON-RPC 2.0 on
// stdio, exposing the converter and log catalog as tools.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/zeveck/claude-session-logger/internal/debug"
)

const (
	ProtocolVersion = "2024-11-05"
	ServerName      = "session-logger-mcp"
	ServerVersion   = "1.0.0"
)

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Standard JSON-RPC error codes.
const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
)

// Tool is one invokable MCP tool.
type Tool interface {
	Name() string
	Description() string
	InputSchema() json.RawMessage
	Execute(args map[string]interface{}) (interface{}, error)
}

// toolInfo is the tools/list wire representation.
type toolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Server dispatches JSON-RPC requests to registered tools. Tools are
// listed in registration order.
type Server struct {
	tools  map[string]Tool
	order  []string
	input  io.Reader
	output io.Writer
}

// NewServer creates a server reading stdin and writing stdout.
func NewServer() *Server {
	return &Server{
		tools:  make(map[string]Tool),
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// RegisterTool adds a tool to the server.
func (s *Server) RegisterTool(tool Tool) {
	name := tool.Name()
	if _, exists := s.tools[name]; !exists {
		s.order = append(s.order, name)
	}
	s.tools[name] = tool
}

// Run processes requests line by line until EOF.
func (s *Server) Run() error {
	reader := bufio.NewReader(s.input)
	encoder := json.NewEncoder(s.output)

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading request: %w", err)
		}
		if len(line) <= 1 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			encoder.Encode(errorResponse(nil, ParseError, "Parse error", err.Error()))
			continue
		}

		if debug.Enabled {
			log.Printf("mcp request: %s", line)
		}

		if resp := s.handle(&req); resp != nil {
			encoder.Encode(resp)
		}
	}
}

func (s *Server) handle(req *Request) *Response {
	if req.JSONRPC != "2.0" {
		return errorResponse(req.ID, InvalidRequest, "Invalid Request", "jsonrpc must be 2.0")
	}

	switch req.Method {
	case "initialize":
		return successResponse(req.ID, map[string]interface{}{
			"protocolVersion": ProtocolVersion,
			"capabilities":    map[string]interface{}{"tools": map[string]interface{}{}},
			"serverInfo":      map[string]interface{}{"name": ServerName, "version": ServerVersion},
		})
	case "initialized":
		// Notification, no response.
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return successResponse(req.ID, map[string]interface{}{})
	default:
		return errorResponse(req.ID, MethodNotFound, "Method not found", req.Method)
	}
}

func (s *Server) handleToolsList(req *Request) *Response {
	tools := make([]toolInfo, 0, len(s.order))
	for _, name := range s.order {
		tool := s.tools[name]
		tools = append(tools, toolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}
	return successResponse(req.ID, map[string]interface{}{"tools": tools})
}

func (s *Server) handleToolsCall(req *Request) *Response {
	var params struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, InvalidParams, "Invalid params", err.Error())
	}

	tool, ok := s.tools[params.Name]
	if !ok {
		return errorResponse(req.ID, InvalidParams, "Tool not found", params.Name)
	}

	result, err := tool.Execute(params.Arguments)
	if err != nil {
		return errorResponse(req.ID, InternalError, "Tool execution failed", err.Error())
	}

	return successResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": formatResult(result)},
		},
	})
}

func formatResult(result interface{}) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(data)
}

func successResponse(id, result interface{}) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id interface{}, code int, message string, data interface{}) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &Error{Code: code, Message: message, Data: data},
	}
}
