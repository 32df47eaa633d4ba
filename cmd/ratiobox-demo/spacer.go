package main

import "fyne.io/fyne/v2"

// minSizeLayout stretches its content over the container and reports a fixed
// minimum size. The demo uses it for gutters between boxes.
type minSizeLayout struct {
	min fyne.Size
}

func (m *minSizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
	}
}

func (m *minSizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return m.min
}
