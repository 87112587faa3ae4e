// Package server implements the MCP (Model Context Protocol) server for
// focal-point crop analysis.
//
// This package provides a JSON-RPC 2.0 server that exposes the focal-point
// detection and crop-coordinate tools through the MCP protocol, enabling
// MCP-compatible clients to pick smart crops for arbitrary target sizes.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Focal Point Analysis:
//   - image_focal_point: Locate the most salient point and its bias
//   - image_crop_coordinates: Derive rule-of-thirds crop coordinates
//   - image_smart_crop: Execute the computed crop
//   - image_crop_preview: Debug overlay of crop rectangle and focal point
//
// Sampling Primitives:
//   - image_average_color: Region mean color
//   - image_entropy: Region luminance entropy
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are
// cached by path and reused across multiple tool calls, avoiding redundant
// disk I/O. Cached originals are never mutated: every analysis works on a
// fresh clone, so the smoothing pass cannot leak between calls.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
