package profile

import "github.com/AnyUserName/tgimg-core/internal/core"

// Variant is a named, fully declarative resize request: unlike Widths
// (which only ever proportionally shrinks to a target width), a Variant
// can ask the geometry solver for a crop, pad, stretch, or explicit
// anchor, exercising the full fit/crop/pad solver from the CLI.
type Variant struct {
	Suffix  string // appended to the output filename, e.g. "square"
	Request core.Request
}

// Profile defines image processing parameters for a target platform.
type Profile struct {
	Name     string
	Widths   []int    // target widths for resize (proportional, mode=Max)
	Variants []Variant // additional declarative fit/crop/pad outputs
	Formats  []string  // output formats in priority order
	Quality  int       // encoding quality 1-100
	Retina   bool      // generate 2x variants for retina
}

// Built-in profiles.
var profiles = map[string]Profile{
	"telegram-webview": {
		Name:    "telegram-webview",
		Widths:  []int{320, 640, 960, 1280},
		Formats: []string{"webp", "jpeg"}, // avif is not requested by this profile
		Quality: 82,
		Retina:  true,
	},
	"telegram-webview-hq": {
		Name:    "telegram-webview-hq",
		Widths:  []int{320, 640, 960, 1280, 1920},
		Formats: []string{"avif", "webp", "jpeg"},
		Quality: 85,
		Retina:  true,
	},
	"minimal": {
		Name:    "minimal",
		Widths:  []int{320, 640},
		Formats: []string{"webp", "jpeg"},
		Quality: 78,
		Retina:  false,
	},
	"telegram-avatar": {
		Name:    "telegram-avatar",
		Widths:  []int{160, 320},
		Formats: []string{"webp", "jpeg"},
		Quality: 85,
		Retina:  true,
		Variants: []Variant{
			{
				Suffix: "square",
				Request: func() core.Request {
					r := core.DefaultRequest()
					r.W, r.H = 320, 320
					r.Mode = core.ModeCrop
					r.Scale = core.ScaleDown
					return r
				}(),
			},
		},
	},
}

// Get returns a profile by name. Falls back to telegram-webview if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["telegram-webview"]
	p.Name = name // preserve requested name
	return p
}

// EffectiveWidths returns all widths including retina variants.
func (p Profile) EffectiveWidths(originalWidth int) []int {
	seen := map[int]bool{}
	var result []int

	for _, w := range p.Widths {
		if w > originalWidth {
			continue // don't upscale
		}
		if !seen[w] {
			seen[w] = true
			result = append(result, w)
		}
		if p.Retina {
			w2 := w * 2
			if w2 <= originalWidth && !seen[w2] {
				seen[w2] = true
				result = append(result, w2)
			}
		}
	}

	// Fall back to the original width only when no profile width fits
	// (the original is smaller than the smallest target).
	if len(result) == 0 && originalWidth > 0 {
		result = append(result, originalWidth)
	}

	return result
}
