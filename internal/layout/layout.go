// Package layout provides pure functions for banner dimension calculations.
package layout

import (
	"github.com/jquag/banner/internal/config"
	"github.com/jquag/banner/internal/host"
	"github.com/jquag/banner/internal/model"
)

// Result holds the computed element frames for one banner layout pass.
// Frames for absent elements (no loader in default mode, no image without
// one) are zero rects with Present false.
type Result struct {
	Loader ElementFrame
	Image  ElementFrame
	Title  ElementFrame
}

// ElementFrame is a frame plus a presence flag.
type ElementFrame struct {
	Present bool
	Frame   host.Rect
}

// Compute derives element positions from the current content.
//
// Both branches horizontally center the icon+title group:
// groupLeft = (containerWidth - groupWidth) / 2. Must be called after the
// title has been measured and before the sequencer repositions elements.
func Compute(kind model.Kind, titleWidth float64, hasImage bool, containerWidth float64, dims config.DimensionsConfig) Result {
	switch kind {
	case model.KindSearching:
		return searchingLayout(titleWidth, containerWidth, dims)
	default:
		return defaultLayout(titleWidth, hasImage, containerWidth, dims)
	}
}

// searchingLayout reserves a loader box left of the title, both vertically
// centered within the banner.
func searchingLayout(titleWidth, containerWidth float64, dims config.DimensionsConfig) Result {
	groupWidth := dims.LoaderSize + dims.LoaderTitleOffset + titleWidth
	groupLeft := (containerWidth - groupWidth) / 2

	loaderY := (dims.BannerHeight - dims.LoaderSize) / 2

	return Result{
		Loader: ElementFrame{
			Present: true,
			Frame: host.Rect{
				X: groupLeft,
				Y: loaderY,
				W: dims.LoaderSize,
				H: dims.LoaderSize,
			},
		},
		Title: ElementFrame{
			Present: true,
			Frame: host.Rect{
				X: groupLeft + dims.LoaderSize + dims.LoaderTitleOffset,
				Y: loaderY,
				W: titleWidth,
				H: dims.LoaderSize,
			},
		},
	}
}

// defaultLayout positions an optional image left of the title. Without an
// image the title occupies the full banner.
func defaultLayout(titleWidth float64, hasImage bool, containerWidth float64, dims config.DimensionsConfig) Result {
	if !hasImage {
		return Result{
			Title: ElementFrame{
				Present: true,
				Frame:   host.Rect{X: 0, Y: 0, W: containerWidth, H: dims.BannerHeight},
			},
		}
	}

	offset := dims.ImageSize + dims.LoaderTitleOffset
	groupWidth := offset + titleWidth
	groupLeft := (containerWidth - groupWidth) / 2

	return Result{
		Image: ElementFrame{
			Present: true,
			Frame: host.Rect{
				X: groupLeft,
				Y: (dims.BannerHeight - dims.ImageSize) / 2,
				W: dims.ImageSize,
				H: dims.ImageSize,
			},
		},
		Title: ElementFrame{
			Present: true,
			Frame: host.Rect{
				X: groupLeft + offset,
				Y: 0,
				W: titleWidth,
				H: dims.BannerHeight,
			},
		},
	}
}
