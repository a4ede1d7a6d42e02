package pipeline

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/AnyUserName/tgimg-core/internal/core"
	"github.com/AnyUserName/tgimg-core/internal/encoder"
	"github.com/AnyUserName/tgimg-core/internal/hasher"
	"github.com/AnyUserName/tgimg-core/internal/manifest"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processResult holds the result of processing a single source image.
type processResult struct {
	key            string
	asset          manifest.Asset
	err            error
	skippedRegress int // variants skipped because larger than original
}

// processImage handles a single source image: decode, resize, encode.
func processImage(src Source, cfg Config, registry *encoder.Registry) processResult {
	result := processResult{key: src.Key}

	// Open and decode image.
	f, err := os.Open(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("open %s: %w", src.RelPath, err)
		return result
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	bounds := img.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()
	hasAlpha := detectAlpha(img)

	// Compute average color.
	avg := computeAvgColor(img)

	// Fill original info.
	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:    origW,
			Height:   origH,
			Format:   src.Format,
			Size:     src.Size,
			HasAlpha: hasAlpha,
		},
		AspectRatio: float64(origW) / float64(origH),
		AvgColor:    &avg,
	}

	// Determine target widths.
	widths := cfg.Profile.EffectiveWidths(origW)

	// Ensure output subdirectory exists.
	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755)
	}

	srcBitmap, err := toBitmap(img)
	if err != nil {
		result.err = fmt.Errorf("bridge %s: %w", src.RelPath, err)
		return result
	}
	srcWindow := srcBitmap.Window()

	// Generate proportional width variants.
	for _, w := range widths {
		req := core.DefaultRequest()
		req.W = int32(w)
		if err := renderRequest(src, cfg, registry, srcWindow, srcBitmap.Info(), origW, origH, req, "", &result); err != nil {
			result.err = err
			return result
		}
	}

	// Generate declarative fit/crop/pad variants (exercises C7's full
	// mode surface, not just proportional shrink-to-width).
	for _, v := range cfg.Profile.Variants {
		if err := renderRequest(src, cfg, registry, srcWindow, srcBitmap.Info(), origW, origH, v.Request, v.Suffix, &result); err != nil {
			result.err = err
			return result
		}
	}

	return result
}

// renderRequest solves, resamples, and encodes one declarative request,
// appending every successful format to result.asset.Variants.
func renderRequest(src Source, cfg Config, registry *encoder.Registry, srcWindow *core.BitmapWindow[uint8], srcInfo core.BitmapInfo, origW, origH int, req core.Request, suffix string, result *processResult) error {
	layout, err := core.SolveRequest(int32(origW), int32(origH), req)
	if err != nil {
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "[tgimg] warn: solve geometry %s: %v\n", src.Key, err)
		}
		return nil
	}
	w, h := int(layout.Canvas.W), int(layout.Canvas.H)

	cropped, err := srcWindow.Sub(int(layout.Crop.X), int(layout.Crop.Y), int(layout.Crop.X2()), int(layout.Crop.Y2()))
	if err != nil {
		return fmt.Errorf("crop %s@%dx%d: %w", src.Key, w, h, err)
	}

	canvasBitmap, err := core.NewBitmap[uint8](w, h, srcInfo.SurfaceInfo)
	if err != nil {
		return fmt.Errorf("allocate canvas %s@%dx%d: %w", src.Key, w, h, err)
	}
	canvasWindow := canvasBitmap.Window()

	filter := core.FilterFor(req, int32(origW), int32(w))
	workingSpace := core.ColorspaceFor(req, int32(origW), int32(w))
	sharpen := core.EffectiveSharpen(req, int32(origW), int32(w))

	if err := core.Resize(cropped, canvasWindow, core.ResizeParams{
		X: int(layout.Image.X), Y: int(layout.Image.Y), W: int(layout.Image.W), H: int(layout.Image.H),
		SharpenPercentGoal: sharpen,
		FilterPreset:       filter,
		WorkingSpace:       workingSpace,
	}); err != nil {
		return fmt.Errorf("resize %s@%dx%d: %w", src.Key, w, h, err)
	}

	resized, err := fromBitmap(canvasWindow)
	if err != nil {
		return fmt.Errorf("bridge back %s@%dx%d: %w", src.Key, w, h, err)
	}

	formats := registry.ResolveFormats(cfg.Profile.Formats, result.asset.Original.HasAlpha)
	keyDir := filepath.Dir(src.Key)

	for _, format := range formats {
		enc := registry.Get(format)
		if enc == nil {
			continue
		}

		data, err := enc.Encode(resized, cfg.Profile.Quality)
		if err != nil {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[tgimg] warn: encode %s@%dx%d as %s: %v\n",
					src.Key, w, h, format, err)
			}
			continue
		}

		if cfg.NoRegressSize && int64(len(data)) >= src.Size {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[tgimg] skip: %s@%dx%d %s — encoded %d >= original %d bytes\n",
					src.Key, w, h, format, len(data), src.Size)
			}
			result.skippedRegress++
			continue
		}

		contentHash := hasher.ContentHash(data, 16)

		// Build filename: key[.suffix].w.h.hash.ext
		label := filepath.Base(src.Key)
		if suffix != "" {
			label = label + "." + suffix
		}
		fileName := fmt.Sprintf("%s.%d.%d.%s.%s", label, w, h, contentHash[:8], enc.Extension())
		relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

		outPath := filepath.Join(cfg.OutputDir, relPath)
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", relPath, err)
		}

		result.asset.Variants = append(result.asset.Variants, manifest.Variant{
			Format: format,
			Width:  w,
			Height: h,
			Size:   int64(len(data)),
			Hash:   contentHash,
			Path:   relPath,
		})
	}
	return nil
}

// computeAvgColor calculates the average RGB color of an image.
func computeAvgColor(img image.Image) [3]uint8 {
	bounds := img.Bounds()
	w := uint64(bounds.Dx())
	h := uint64(bounds.Dy())
	count := w * h
	if count == 0 {
		return [3]uint8{0, 0, 0}
	}
	var rSum, gSum, bSum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
		}
	}
	return [3]uint8{
		uint8(rSum / count),
		uint8(gSum / count),
		uint8(bSum / count),
	}
}

// detectAlpha reports whether img carries any pixel with partial or
// full transparency. Opaque color models (YCbCr, Gray, CMYK) are
// rejected outright since image/jpeg and the like never produce alpha.
func detectAlpha(img image.Image) bool {
	switch img.ColorModel() {
	case color.YCbCrModel, color.GrayModel, color.Gray16Model, color.CMYKModel:
		return false
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a != 0xffff {
				return true
			}
		}
	}
	return false
}
