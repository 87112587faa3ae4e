package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/focal-crop-mcp/internal/focal"
	"github.com/ironsheep/focal-crop-mcp/internal/raster"
	"github.com/ironsheep/focal-crop-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("focal-crop-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "crop":
			if err := runCrop(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "crop: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("FOCAL_CROP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Focal Crop MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage() {
	fmt.Println("focal-crop-mcp - MCP server for focal point detection and smart cropping")
	fmt.Println()
	fmt.Println("Usage: focal-crop-mcp [options]")
	fmt.Println("       focal-crop-mcp crop <input> <width> <height> <output>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  crop             One-shot smart crop of an image file, without the server")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  FOCAL_CROP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("Without a command the server communicates via MCP protocol over")
	fmt.Println("stdin/stdout. Configure it in your MCP client (e.g., Claude Desktop).")
}

// runCrop performs a single smart crop from the command line:
// locate the focal point, place the crop window, write the result.
func runCrop(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: focal-crop-mcp crop <input> <width> <height> <output>")
	}
	input, output := args[0], args[3]
	width, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", args[1], err)
	}
	height, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid height %q: %w", args[2], err)
	}

	img, err := imaging.Open(input, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", input, err)
	}

	loc, err := focal.NewLocator(raster.New(img))
	if err != nil {
		return err
	}
	x, y, err := loc.CropCoordinates(width, height)
	if err != nil {
		return err
	}

	cropped := imaging.Crop(img, image.Rect(x, y, x+width, y+height))
	if err := imaging.Save(cropped, output); err != nil {
		return fmt.Errorf("failed to save %s: %w", output, err)
	}

	fmt.Fprintf(os.Stderr, "cropped %s at (%d,%d) %dx%d -> %s\n", input, x, y, width, height, output)
	return nil
}
