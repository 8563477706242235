package window

// WindowBuilderOption is a functional option for configuring a Window.
type WindowBuilderOption func(*engineWindow)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: functional option to set the title
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the window client area width.
// Values below 1 keep the default.
//
// Parameters:
//   - width: the width in pixels
//
// Returns:
//   - WindowBuilderOption: functional option to set the width
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width < 1 {
			return
		}
		w.width = width
	}
}

// WithHeight sets the window client area height.
// Values below 1 keep the default.
//
// Parameters:
//   - height: the height in pixels
//
// Returns:
//   - WindowBuilderOption: functional option to set the height
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if height < 1 {
			return
		}
		w.height = height
	}
}
