package layout

import (
	"fyne.io/fyne/v2"
)

// MinSizeLayout stacks its objects over the full container area and reports a
// minimum size no smaller than the configured floor. Fyne windows never shrink
// below their content's MinSize, so this is how a window gets a minimum size.
type MinSizeLayout struct {
	floor fyne.Size
}

func NewMinSizeLayout(floor fyne.Size) *MinSizeLayout {
	return &MinSizeLayout{floor: floor}
}

func (l *MinSizeLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		obj.Resize(containerSize)
		obj.Move(fyne.NewPos(0, 0))
	}
}

func (l *MinSizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := l.floor
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		size = size.Max(obj.MinSize())
	}
	return size
}
