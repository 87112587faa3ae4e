package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// regionProperty is the optional rectangular region shared by the
// sampling tools.
func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Optional region [x,x+w) x [y,y+h); defaults to the whole image",
		"properties": map[string]interface{}{
			"x": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"w": map[string]interface{}{"type": "integer", "description": "Region width in pixels"},
			"h": map[string]interface{}{"type": "integer", "description": "Region height in pixels"},
		},
		"required": []string{"x", "y", "w", "h"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Focal Point Analysis
		{
			Name:        "image_focal_point",
			Description: "Locate the most visually interesting point of an image by slice scoring (color contrast + entropy). Returns the focal point as fractions of the image dimensions plus per-axis directional bias.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"slice_count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of strips per axis pass. Default 20",
						"default":     20,
					},
					"weight": map[string]interface{}{
						"type":        "number",
						"description": "Mix of color contrast (1.0) vs entropy (0.0) in slice scores. Default 0.5",
						"default":     0.5,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_crop_coordinates",
			Description: "Compute the top-left corner of a dest_width x dest_height crop placed so the focal point sits on a rule-of-thirds line. Only coordinates are returned; no pixels are produced.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dest_width": map[string]interface{}{
						"type":        "integer",
						"description": "Crop width in pixels (must not exceed the source width)",
					},
					"dest_height": map[string]interface{}{
						"type":        "integer",
						"description": "Crop height in pixels (must not exceed the source height)",
					},
				},
				"required": []string{"path", "dest_width", "dest_height"},
			},
		},
		{
			Name:        "image_smart_crop",
			Description: "Compute focal-point crop coordinates and execute the crop, returning the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dest_width": map[string]interface{}{
						"type":        "integer",
						"description": "Crop width in pixels",
					},
					"dest_height": map[string]interface{}{
						"type":        "integer",
						"description": "Crop height in pixels",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the cropped output. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "dest_width", "dest_height"},
			},
		},
		{
			Name:        "image_crop_preview",
			Description: "Render a debug overlay showing the chosen crop rectangle, its rule-of-thirds lines, and the focal point marker.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dest_width": map[string]interface{}{
						"type":        "integer",
						"description": "Crop width in pixels",
					},
					"dest_height": map[string]interface{}{
						"type":        "integer",
						"description": "Crop height in pixels",
					},
					"line_color": map[string]interface{}{
						"type":        "string",
						"description": "Overlay color as #rrggbb. Default #ff0000",
						"default":     "#ff0000",
					},
				},
				"required": []string{"path", "dest_width", "dest_height"},
			},
		},

		// Sampling Primitives
		{
			Name:        "image_average_color",
			Description: "Get the mean color of an image or region (RGB components and hex).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_entropy",
			Description: "Get the luminance-histogram entropy (bits, 0-8) of an image or region. Higher means more visually complex.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}
