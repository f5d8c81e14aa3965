package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phastlab/pinpoint-mcp/internal/imageset"
	"github.com/phastlab/pinpoint-mcp/internal/measure"
	"github.com/phastlab/pinpoint-mcp/internal/results"
	"github.com/phastlab/pinpoint-mcp/internal/stats"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "calibrate_scale", "measure_trial").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Calibration & Measurement
	case "calibrate_scale":
		return s.handleCalibrateScale(args)
	case "measure_distance":
		return s.handleMeasureDistance(args)
	case "measure_trial":
		return s.handleMeasureTrial(args)

	// Results Store
	case "results_append":
		return s.handleResultsAppend(args)
	case "results_load":
		return s.handleResultsLoad(args)
	case "results_undo_last":
		return s.handleResultsUndoLast(args)
	case "results_export_csv":
		return s.handleResultsExportCSV(args)

	// Review
	case "results_stats":
		return s.handleResultsStats(args)
	case "results_series":
		return s.handleResultsSeries(args)

	// Trial Images
	case "imageset_list":
		return s.handleImagesetList(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_preview":
		return s.handleImagePreview(args)
	case "image_annotate":
		return s.handleImageAnnotate(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// pointArg is a pixel point as supplied by the client.
type pointArg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p pointArg) point() measure.Point {
	return measure.Point{X: p.X, Y: p.Y}
}

// === Calibration & Measurement Handlers ===

type calibrateScaleArgs struct {
	PointA       pointArg `json:"point_a"`
	PointB       pointArg `json:"point_b"`
	RealDistance float64  `json:"real_distance"`
}

// CalibrateScaleResult is the outcome of a calibration derivation.
type CalibrateScaleResult struct {
	ScalingFactor float64 `json:"scaling_factor"`
	PixelDistance float64 `json:"pixel_distance"`
}

func (s *Server) handleCalibrateScale(args json.RawMessage) (interface{}, error) {
	var a calibrateScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.RealDistance <= 0 {
		return nil, fmt.Errorf("real_distance must be positive, got %v", a.RealDistance)
	}
	factor, err := measure.DeriveScalingFactor(a.RealDistance, a.PointA.point(), a.PointB.point())
	if err != nil {
		return nil, err
	}
	return &CalibrateScaleResult{
		ScalingFactor: factor,
		PixelDistance: measure.Distance(a.PointA.point(), a.PointB.point(), 1),
	}, nil
}

type measureDistanceArgs struct {
	PointA pointArg `json:"point_a"`
	PointB pointArg `json:"point_b"`
	Scale  float64  `json:"scale"`
}

func (s *Server) handleMeasureDistance(args json.RawMessage) (interface{}, error) {
	var a measureDistanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	return map[string]float64{
		"distance": measure.Distance(a.PointA.point(), a.PointB.point(), a.Scale),
	}, nil
}

type measureTrialArgs struct {
	Target        pointArg `json:"target"`
	Implement     pointArg `json:"implement"`
	ScalingFactor float64  `json:"scaling_factor"`
	Orientation   int      `json:"orientation"`
}

func (s *Server) handleMeasureTrial(args json.RawMessage) (interface{}, error) {
	var a measureTrialArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return measure.ComputeTrial(a.Target.point(), a.Implement.point(),
		a.ScalingFactor, measure.AxisOrientation(a.Orientation))
}

// === Results Store Handlers ===

// trialArg is one trial record to append. Status selects between a measured
// record and the two sentinel records.
type trialArg struct {
	Index  int     `json:"index"`
	Name   string  `json:"name"`
	Status string  `json:"status"` // "measured", "no-image", "out-of-bounds"
	Radial float64 `json:"radial"`
	XAxis  float64 `json:"x_axis"`
	YAxis  float64 `json:"y_axis"`
}

func (t trialArg) trial() (results.Trial, error) {
	trial := results.Trial{Index: t.Index, Name: t.Name}
	switch t.Status {
	case "", "measured":
		trial.Measurement = measure.Measured(&measure.TrialResult{
			Radial: t.Radial, X: t.XAxis, Y: t.YAxis,
		})
	case "no-image":
		trial.Measurement = measure.NoImage()
	case "out-of-bounds":
		trial.Measurement = measure.OutOfBounds()
	default:
		return trial, fmt.Errorf("unknown trial status: %q", t.Status)
	}
	return trial, nil
}

type resultsAppendArgs struct {
	Folder string     `json:"folder"`
	Trials []trialArg `json:"trials"`
}

func (s *Server) handleResultsAppend(args json.RawMessage) (interface{}, error) {
	var a resultsAppendArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	trials := make([]results.Trial, len(a.Trials))
	for i, t := range a.Trials {
		trial, err := t.trial()
		if err != nil {
			return nil, err
		}
		trials[i] = trial
	}

	store := results.NewStore(a.Folder)
	if err := store.Append(trials); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"path":     store.Path(),
		"appended": len(trials),
	}, nil
}

type resultsFolderArgs struct {
	Folder string `json:"folder"`
}

func (s *Server) handleResultsLoad(args json.RawMessage) (interface{}, error) {
	var a resultsFolderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, err := results.ParseFolder(a.Folder)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"rows":  rows,
		"count": len(rows),
	}, nil
}

func (s *Server) handleResultsUndoLast(args json.RawMessage) (interface{}, error) {
	var a resultsFolderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	store := results.NewStore(a.Folder)
	if err := store.TrimLastRecord(); err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": store.Path()}, nil
}

func (s *Server) handleResultsExportCSV(args json.RawMessage) (interface{}, error) {
	var a resultsFolderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, err := results.ParseFolder(a.Folder)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := results.WriteCSV(rows, &buf); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"csv":  buf.String(),
		"rows": len(rows),
	}, nil
}

// === Review Handlers ===

func (s *Server) handleResultsStats(args json.RawMessage) (interface{}, error) {
	var a resultsFolderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, err := results.ParseFolder(a.Folder)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"columns": stats.Summarize(rows),
	}, nil
}

func (s *Server) handleResultsSeries(args json.RawMessage) (interface{}, error) {
	var a resultsFolderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, err := results.ParseFolder(a.Folder)
	if err != nil {
		return nil, err
	}
	return stats.ScatterSeries(rows), nil
}

// === Trial Image Handlers ===

func (s *Server) handleImagesetList(args json.RawMessage) (interface{}, error) {
	var a resultsFolderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	entries, err := imageset.List(a.Folder)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"images": entries,
		"count":  len(entries),
	}, nil
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageset.LoadInfo(s.cache, a.Path)
}

type imagePreviewArgs struct {
	Path      string `json:"path"`
	MaxWidth  int    `json:"max_width"`
	MaxHeight int    `json:"max_height"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageset.Preview(img, a.MaxWidth, a.MaxHeight)
}

type imageAnnotateArgs struct {
	Path        string   `json:"path"`
	Target      pointArg `json:"target"`
	Implement   pointArg `json:"implement"`
	MarkerColor string   `json:"marker_color"`
	TargetFill  string   `json:"target_fill"`
	Scale       float64  `json:"scale"`
}

func (s *Server) handleImageAnnotate(args json.RawMessage) (interface{}, error) {
	var a imageAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageset.Annotate(img, a.Target.point(), a.Implement.point(), imageset.AnnotateOptions{
		MarkerColor: a.MarkerColor,
		TargetFill:  a.TargetFill,
		Scale:       a.Scale,
	})
}
