package main

import (
	"embed"
	"sort"

	"fyne.io/fyne/v2"

	"ratiobox"
)

//go:embed assets
var embeddedAssets embed.FS

const boxesPath = "assets/boxes.toml"

// namedBox is one box built from the embedded attribute sets.
type namedBox struct {
	name string
	box  *ratiobox.RatioBox
}

// loadBoxes builds a RatioBox for every valid attribute set, in name order.
// Sets that fail to resolve are logged and skipped.
func loadBoxes() []namedBox {
	f, err := embeddedAssets.Open(boxesPath)
	if err != nil {
		// The asset is compiled in, so a missing file is a build defect.
		panic("failed to open embedded asset " + boxesPath + ": " + err.Error())
	}
	defer f.Close()
	sets, err := ratiobox.DecodeTOML(f)
	if err != nil {
		panic("failed to decode embedded asset " + boxesPath + ": " + err.Error())
	}
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	boxes := make([]namedBox, 0, len(names))
	for _, name := range names {
		box, err := ratiobox.NewFromAttributes(sets[name])
		if err != nil {
			fyne.LogError("skipping box "+name, err)
			continue
		}
		boxes = append(boxes, namedBox{name: name, box: box})
	}
	return boxes
}
