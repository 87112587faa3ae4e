package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/focal-crop-mcp/internal/colorspace"
	"github.com/ironsheep/focal-crop-mcp/internal/focal"
	"github.com/ironsheep/focal-crop-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_focal_point").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate raster/focal function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Focal Point Analysis
	case "image_focal_point":
		return s.handleImageFocalPoint(args)
	case "image_crop_coordinates":
		return s.handleImageCropCoordinates(args)
	case "image_smart_crop":
		return s.handleImageSmartCrop(args)
	case "image_crop_preview":
		return s.handleImageCropPreview(args)

	// Sampling Primitives
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_entropy":
		return s.handleImageEntropy(args)

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

// locatorFor wraps a decoded image in a fresh working raster and builds a
// locator over it. Each call gets its own working copy so the smoothing
// pass never touches the cached original.
func locatorFor(img image.Image) (*focal.Locator, error) {
	return focal.NewLocator(raster.New(img))
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return raster.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return raster.GetDimensions(s.cache, a.Path)
}

// === Focal Point Analysis Handlers ===

type imageFocalPointArgs struct {
	Path       string   `json:"path"`
	SliceCount int      `json:"slice_count"`
	Weight     *float64 `json:"weight,omitempty"`
}

// FocalPointResult reports a located focal point together with the
// analysis parameters that produced it.
type FocalPointResult struct {
	focal.FocalPoint
	SliceCount int     `json:"slice_count"`
	Weight     float64 `json:"weight"`
}

func (s *Server) handleImageFocalPoint(args json.RawMessage) (interface{}, error) {
	var a imageFocalPointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SliceCount == 0 {
		a.SliceCount = focal.DefaultSliceCount
	}
	// Weight is a pointer because 0 is a meaningful value (entropy-only
	// scoring), not a missing one.
	weight := focal.DefaultWeight
	if a.Weight != nil {
		weight = *a.Weight
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(img)
	if err != nil {
		return nil, err
	}
	fp, err := loc.FocalPoint(a.SliceCount, weight)
	if err != nil {
		return nil, err
	}

	return &FocalPointResult{FocalPoint: *fp, SliceCount: a.SliceCount, Weight: weight}, nil
}

type imageCropCoordinatesArgs struct {
	Path       string `json:"path"`
	DestWidth  int    `json:"dest_width"`
	DestHeight int    `json:"dest_height"`
}

// CropCoordinatesResult reports the computed crop origin along with the
// focal point that placed it.
type CropCoordinatesResult struct {
	X          int              `json:"x"`
	Y          int              `json:"y"`
	DestWidth  int              `json:"dest_width"`
	DestHeight int              `json:"dest_height"`
	FocalPoint focal.FocalPoint `json:"focal_point"`
}

// cropCoordinates runs the full analysis for a path/destination pair.
func (s *Server) cropCoordinates(path string, destWidth, destHeight int) (image.Image, *CropCoordinatesResult, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, nil, err
	}
	loc, err := locatorFor(img)
	if err != nil {
		return nil, nil, err
	}
	fp, err := loc.FocalPoint(focal.DefaultSliceCount, focal.DefaultWeight)
	if err != nil {
		return nil, nil, err
	}
	srcWidth, srcHeight := loc.Size()
	x, y, err := focal.CropCoordinates(fp, srcWidth, srcHeight, destWidth, destHeight)
	if err != nil {
		return nil, nil, err
	}
	return img, &CropCoordinatesResult{
		X:          x,
		Y:          y,
		DestWidth:  destWidth,
		DestHeight: destHeight,
		FocalPoint: *fp,
	}, nil
}

func (s *Server) handleImageCropCoordinates(args json.RawMessage) (interface{}, error) {
	var a imageCropCoordinatesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, result, err := s.cropCoordinates(a.Path, a.DestWidth, a.DestHeight)
	return result, err
}

type imageSmartCropArgs struct {
	Path       string  `json:"path"`
	DestWidth  int     `json:"dest_width"`
	DestHeight int     `json:"dest_height"`
	Scale      float64 `json:"scale"`
}

func (s *Server) handleImageSmartCrop(args json.RawMessage) (interface{}, error) {
	var a imageSmartCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, coords, err := s.cropCoordinates(a.Path, a.DestWidth, a.DestHeight)
	if err != nil {
		return nil, err
	}
	// The crop is executed against the cached original, not the smoothed
	// working copy the analysis used.
	return raster.Crop(img, coords.X, coords.Y, a.DestWidth, a.DestHeight, a.Scale)
}

type imageCropPreviewArgs struct {
	Path       string `json:"path"`
	DestWidth  int    `json:"dest_width"`
	DestHeight int    `json:"dest_height"`
	LineColor  string `json:"line_color"`
}

func (s *Server) handleImageCropPreview(args json.RawMessage) (interface{}, error) {
	var a imageCropPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.LineColor == "" {
		a.LineColor = "#ff0000"
	}
	img, coords, err := s.cropCoordinates(a.Path, a.DestWidth, a.DestHeight)
	if err != nil {
		return nil, err
	}
	return raster.ThirdsOverlay(img, coords.X, coords.Y, a.DestWidth, a.DestHeight,
		coords.FocalPoint.X, coords.FocalPoint.Y, a.LineColor)
}

// === Sampling Primitive Handlers ===

type regionArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type imageRegionArgs struct {
	Path   string      `json:"path"`
	Region *regionArgs `json:"region,omitempty"`
}

// resolveRegion defaults a missing region to the whole image.
func resolveRegion(r *raster.Image, region *regionArgs) (x, y, w, h int) {
	if region != nil {
		return region.X, region.Y, region.W, region.H
	}
	w, h = r.Size()
	return 0, 0, w, h
}

// AverageColorResult reports the mean color of a region.
type AverageColorResult struct {
	RGB colorspace.RGB `json:"rgb"`
	Hex string         `json:"hex"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	r := raster.New(img)
	x, y, w, h := resolveRegion(r, a.Region)
	avg, err := r.AverageColor(x, y, w, h)
	if err != nil {
		return nil, err
	}
	return &AverageColorResult{RGB: avg, Hex: avg.Hex()}, nil
}

// EntropyResult reports the luminance entropy of a region.
type EntropyResult struct {
	Entropy float64 `json:"entropy"`
}

func (s *Server) handleImageEntropy(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	r := raster.New(img)
	x, y, w, h := resolveRegion(r, a.Region)
	entropy, err := r.Entropy(x, y, w, h)
	if err != nil {
		return nil, err
	}
	return &EntropyResult{Entropy: entropy}, nil
}
