package host

// Concrete view elements handed to the bridge. The core mutates their
// content fields in place (during a cross-fade change); hosts read the
// current values on every render.

// RootElement is the banner container. Its frame collapses and expands
// during entrance and exit animations.
type RootElement struct {
	Color string
}

func (e *RootElement) Name() string { return "root" }

// TitleElement renders the notification title.
type TitleElement struct {
	Text string
}

func (e *TitleElement) Name() string { return "title" }

// ImageElement renders a static icon or cycles an animated frame sequence.
type ImageElement struct {
	Frames []string
}

func (e *ImageElement) Name() string { return "image" }

// LoaderElement renders the searching spinner.
type LoaderElement struct{}

func (e *LoaderElement) Name() string { return "loader" }
