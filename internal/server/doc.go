// Package server implements the MCP (Model Context Protocol) server for the
// measurement core.
//
// This package provides a JSON-RPC 2.0 server that exposes the calibration,
// trial-measurement, and results-review operations to MCP-compatible
// clients — a desktop front end, a test harness, or an AI system driving a
// measurement session.
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
// Calibration & Measurement:
//   - calibrate_scale: Derive scaling factor from two points and a distance
//   - measure_distance: Scaled Euclidean distance between two points
//   - measure_trial: Radial and X/Y displacement for one trial
//
// Results Store:
//   - results_append: Append trial records to the session results file
//   - results_load: Parse the results file back into rows
//   - results_undo_last: Remove the most recent record
//   - results_export_csv: Export parsed rows as CSV
//
// Review:
//   - results_stats: Per-column summary statistics
//   - results_series: Scatter-plot series with sentinels masked
//
// Trial Images:
//   - imageset_list: Enumerate trial images in order
//   - image_info: Image dimensions, format, file size
//   - image_preview: Aspect-preserving downscale
//   - image_annotate: Target/implement marker overlay
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded trial images, keyed by
// path and reused across tool calls for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Notably, a degenerate calibration (both points identical) and an invalid
// axis orientation surface here as tool errors for the client to present;
// they are user-correctable, not fatal.
package server
