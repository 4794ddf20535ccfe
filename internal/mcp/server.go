// Package mcp exposes outline extraction as Model Context Protocol
// tools over standard I/O.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docpeek/pdf-outline/internal/config"
	"github.com/docpeek/pdf-outline/internal/outline"
	"github.com/docpeek/pdf-outline/internal/pdf"
)

// Server represents the MCP server instance.
type Server struct {
	config    *config.Config
	engine    *outline.Engine
	extractor *pdf.Extractor
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, engine *outline.Engine, extractor *pdf.Extractor) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if extractor == nil {
		return nil, fmt.Errorf("extractor cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		engine:    engine,
		extractor: extractor,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	extractFileTool := mcp.NewTool(
		"outline_extract_file",
		mcp.WithDescription("Infer a PDF's title and H1-H3 heading outline from its typography"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleExtractFile)

	extractDirectoryTool := mcp.NewTool(
		"outline_extract_directory",
		mcp.WithDescription("Infer outlines for every PDF in a directory"),
		mcp.WithString("directory",
			mcp.Description("Directory to process (uses the configured input directory if empty)"),
		),
	)
	s.mcpServer.AddTool(extractDirectoryTool, s.handleExtractDirectory)

	validateFileTool := mcp.NewTool(
		"pdf_validate_file",
		mcp.WithDescription("Validate a PDF file and report its page count"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)
}

// handleExtractFile runs the outline pipeline on one file. A document
// that fails to parse still returns its degraded result rather than a
// tool error, matching the batch behavior.
func (s *Server) handleExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, procErr := s.engine.ExtractFile(path)
	if procErr != nil {
		log.Printf("Failed to process %s: %v", path, procErr)
	}

	text, err := marshalIndented(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// documentResult pairs a filename with its extraction result.
type documentResult struct {
	File    string         `json:"file"`
	Outline outline.Result `json:"result"`
}

func (s *Server) handleExtractDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.InputDir // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot read directory %s: %v", directory, err)), nil
	}

	results := []documentResult{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		path := filepath.Join(directory, entry.Name())
		result, procErr := s.engine.ExtractFile(path)
		if procErr != nil {
			log.Printf("Failed to process %s: %v", path, procErr)
		}
		results = append(results, documentResult{File: entry.Name(), Outline: result})
	}

	text, err := marshalIndented(results)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := marshalIndented(s.extractor.InspectFile(path))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// marshalIndented renders tool payloads as indented JSON with HTML
// escaping off, the same shape the batch artifacts use.
func marshalIndented(v any) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Run starts the MCP server over standard I/O and blocks until the
// transport closes.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting pdf-outline MCP server in stdio mode")
		log.Printf("Input directory: %s", s.config.InputDir)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
