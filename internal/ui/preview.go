package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PreviewPane shows the most recently generated frame. With keep-aspect
// enabled the image letterboxes inside the pane instead of stretching.
type PreviewPane struct {
	image       *canvas.Image
	placeholder *widget.Label
	content     *fyne.Container
	keepAspect  bool
}

// NewPreviewPane creates an empty preview pane
func NewPreviewPane(localization *Localization) *PreviewPane {
	p := &PreviewPane{
		placeholder: widget.NewLabel(localization.GetText(KeyAppTitle)),
		keepAspect:  true,
	}

	p.image = canvas.NewImageFromImage(nil)
	p.image.FillMode = canvas.ImageFillContain
	p.image.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))
	p.image.Hide()

	p.placeholder.Alignment = fyne.TextAlignCenter

	p.content = container.NewStack(container.NewCenter(p.placeholder), p.image)
	return p
}

// Container returns the pane's root canvas object
func (p *PreviewPane) Container() fyne.CanvasObject {
	return p.content
}

// SetKeepAspect toggles letterboxing versus stretch-to-fit
func (p *PreviewPane) SetKeepAspect(keep bool) {
	p.keepAspect = keep
	if keep {
		p.image.FillMode = canvas.ImageFillContain
	} else {
		p.image.FillMode = canvas.ImageFillStretch
	}
	p.image.Refresh()
}

// SetImage replaces the displayed frame. Must be called on the UI thread.
func (p *PreviewPane) SetImage(img image.Image) {
	if img == nil {
		p.Clear()
		return
	}
	p.image.Image = img
	p.placeholder.Hide()
	p.image.Show()
	p.image.Refresh()
}

// Clear removes the displayed frame and shows the placeholder again
func (p *PreviewPane) Clear() {
	p.image.Image = nil
	p.image.Hide()
	p.placeholder.Show()
	p.content.Refresh()
}
