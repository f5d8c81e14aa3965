package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pointSchema is the shared schema for a clicked pixel point.
func pointSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x": map[string]interface{}{
				"type":        "number",
				"description": "X pixel coordinate (0 = left edge)",
			},
			"y": map[string]interface{}{
				"type":        "number",
				"description": "Y pixel coordinate (0 = top edge)",
			},
		},
		"required": []string{"x", "y"},
	}
}

// folderSchema is the shared schema for tools operating on a session folder.
func folderSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"folder": map[string]interface{}{
				"type":        "string",
				"description": "Absolute path to the session's image folder (results live in its Results/ subfolder)",
			},
		},
		"required": []string{"folder"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Calibration & Measurement
		{
			Name:        "calibrate_scale",
			Description: "Derive the pixel-to-real-world scaling factor from two clicked points a known real-world distance apart on the calibration image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"point_a": pointSchema("First calibration point"),
					"point_b": pointSchema("Second calibration point"),
					"real_distance": map[string]interface{}{
						"type":        "number",
						"description": "Real-world distance between the two points (must be positive)",
					},
				},
				"required": []string{"point_a", "point_b", "real_distance"},
			},
		},
		{
			Name:        "measure_distance",
			Description: "Euclidean distance between two pixel points, optionally scaled by a calibration factor.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"point_a": pointSchema("First point"),
					"point_b": pointSchema("Second point"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scaling factor. Default 1.0 (pure pixel distance)",
						"default":     1.0,
					},
				},
				"required": []string{"point_a", "point_b"},
			},
		},
		{
			Name:        "measure_trial",
			Description: "Compute the radial and signed X/Y real-world displacement between a target point and an implement point, under the session's scaling factor and axis orientation. Values are rounded to 2 decimals as stored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"target":    pointSchema("Target point on the trial image"),
					"implement": pointSchema("Implement landing point on the trial image"),
					"scaling_factor": map[string]interface{}{
						"type":        "number",
						"description": "Session scaling factor from calibrate_scale",
					},
					"orientation": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{0, 1, 2, 3},
						"description": "Axis orientation convention selected during calibration",
					},
				},
				"required": []string{"target", "implement", "scaling_factor", "orientation"},
			},
		},

		// Results Store
		{
			Name:        "results_append",
			Description: "Append trial records to the session's Results/Results_File.txt, creating the folder and file preamble on first use. Each trial is either measured (with radial/x/y values) or a no-image / out-of-bounds sentinel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"folder": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the session's image folder",
					},
					"trials": map[string]interface{}{
						"type":        "array",
						"description": "Trial records in order",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"index": map[string]interface{}{
									"type":        "integer",
									"description": "0-based trial index",
								},
								"name": map[string]interface{}{
									"type":        "string",
									"description": "Trial image filename",
								},
								"status": map[string]interface{}{
									"type":        "string",
									"enum":        []string{"measured", "no-image", "out-of-bounds"},
									"description": "Record kind. Default measured",
								},
								"radial": map[string]interface{}{"type": "number"},
								"x_axis": map[string]interface{}{"type": "number"},
								"y_axis": map[string]interface{}{"type": "number"},
							},
							"required": []string{"index", "name"},
						},
					},
				},
				"required": []string{"folder", "trials"},
			},
		},
		{
			Name:        "results_load",
			Description: "Parse the session's results file and return its records in file order. Sentinel rows are tagged so they remain distinguishable from numeric rows.",
			InputSchema: folderSchema(),
		},
		{
			Name:        "results_undo_last",
			Description: "Remove the most recently appended trial record from the results file.",
			InputSchema: folderSchema(),
		},
		{
			Name:        "results_export_csv",
			Description: "Export the parsed results as CSV text with the five column headers.",
			InputSchema: folderSchema(),
		},

		// Review
		{
			Name:        "results_stats",
			Description: "Summary statistics (mean, median, mode, std dev, variance, range, IQR, max difference %) per measurement column, with sentinel rows masked.",
			InputSchema: folderSchema(),
		},
		{
			Name:        "results_series",
			Description: "Scatter-plot series (trial IDs plus radial/x/y values) with sentinel rows masked.",
			InputSchema: folderSchema(),
		},

		// Trial Images
		{
			Name:        "imageset_list",
			Description: "List the trial images (png, jpg, jpeg, bmp) in a folder in trial order with their 0-based indices.",
			InputSchema: folderSchema(),
		},
		{
			Name:        "image_info",
			Description: "Get dimensions, format, and file size of a trial image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_preview",
			Description: "Downscale an image to fit a bounding box (default 1600x1200) preserving aspect ratio, returned as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Bounding box width. Default 1600",
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"description": "Bounding box height. Default 1200",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_annotate",
			Description: "Render the trial image with a filled circle at the target point and a cross at the implement point, returned as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"target":    pointSchema("Target point"),
					"implement": pointSchema("Implement point"),
					"marker_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex pen color for markers. Default #FF0000",
					},
					"target_fill": map[string]interface{}{
						"type":        "string",
						"description": "Hex fill color for the target circle. Default #00FF00",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional output scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "target", "implement"},
			},
		},
	}
}
