// Command ratiobox-demo shows RatioBox containers built from the embedded
// attribute sets. Tap a box to flip its direction; the selector applies a
// preset ratio to the last tapped box.
package main

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"ratiobox"
)

var palette = []color.Color{
	color.NRGBA{R: 200, G: 80, B: 70, A: 255},
	color.NRGBA{R: 70, G: 150, B: 90, A: 255},
	color.NRGBA{R: 60, G: 100, B: 180, A: 255},
	color.NRGBA{R: 190, G: 150, B: 50, A: 255},
	color.NRGBA{R: 130, G: 80, B: 170, A: 255},
}

// demoUI holds the boxes and the widgets that control them.
type demoUI struct {
	boxes     []namedBox
	swatches  []*swatch
	selected  int
	infoLabel *widget.Label
	root      *fyne.Container
}

func main() {
	myApp := app.New()
	myWindow := myApp.NewWindow("RatioBox")
	myApp.Settings().SetTheme(newDemoTheme(myApp.Settings().Theme()))
	myWindow.Resize(fyne.NewSize(640, 480))
	ui := &demoUI{boxes: loadBoxes()}
	myWindow.SetContent(ui.buildLayout())
	myWindow.CenterOnScreen()
	myWindow.ShowAndRun()
}

func (ui *demoUI) buildLayout() fyne.CanvasObject {
	ui.infoLabel = widget.NewLabel("Tap a box to flip its direction.")
	presets := ratiobox.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.String()
	}
	presetSelect := widget.NewSelect(names, func(s string) {
		for i, name := range names {
			if s == name {
				ui.applyPreset(presets[i])
				break
			}
		}
	})
	presetSelect.PlaceHolder = "Apply preset"
	topBar := container.NewBorder(nil, nil, presetSelect, nil, ui.infoLabel)

	var row []fyne.CanvasObject
	for i, nb := range ui.boxes {
		index := i
		sw := newSwatch(palette[i%len(palette)], caption(nb), func() { ui.flip(index) })
		c := ratiobox.NewContainer(nb.box, sw)
		ui.swatches = append(ui.swatches, sw)
		// Center keeps the outer layout from stretching the box past its ratio.
		row = append(row, container.NewCenter(c))
		if i < len(ui.boxes)-1 {
			row = append(row, container.New(&minSizeLayout{min: fyne.NewSize(10, 0)}))
		}
	}
	boxes := container.NewHScroll(container.New(layout.NewHBoxLayout(), row...))
	ui.root = container.NewBorder(topBar, nil, nil, nil, boxes)
	return ui.root
}

// flip toggles the direction of box i and selects it.
func (ui *demoUI) flip(i int) {
	box := ui.boxes[i].box
	if box.Direction() == ratiobox.WidthFromHeight {
		box.SetDirection(ratiobox.HeightFromWidth)
	} else {
		box.SetDirection(ratiobox.WidthFromHeight)
	}
	ui.selected = i
	ui.refresh(i)
}

func (ui *demoUI) applyPreset(p ratiobox.Preset) {
	if len(ui.boxes) == 0 {
		return
	}
	if err := ui.boxes[ui.selected].box.SetPreset(p); err != nil {
		fyne.LogError("apply preset", err)
		return
	}
	ui.refresh(ui.selected)
}

func (ui *demoUI) refresh(i int) {
	nb := ui.boxes[i]
	ui.swatches[i].SetCaption(caption(nb))
	// The box's minimum size changed, so the whole tree has to lay out again.
	ui.root.Refresh()
	ui.infoLabel.SetText(fmt.Sprintf("%s: %dx%d", nb.name, nb.box.MeasuredWidth(), nb.box.MeasuredHeight()))
}

func caption(nb namedBox) string {
	return fmt.Sprintf("%s %s %.3f", nb.name, nb.box.Direction(), nb.box.Ratio())
}
