package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/stickerframe/stickerframe/internal/config"
)

// FramePanel edits a frame configuration in place and notifies the
// owner on every change so auto-preview can react.
type FramePanel struct {
	window       fyne.Window
	localization *Localization
	frame        *config.Frame
	onChanged    func()

	// guard against change callbacks while widgets are being reloaded
	loading bool

	// UI components
	templateWidth  *widget.Entry
	templateHeight *widget.Entry
	outputWidth    *widget.Entry
	outputHeight   *widget.Entry
	densitySlider  *widget.Slider
	densityLabel   *widget.Label
	minSizeEntry   *widget.Entry
	maxSizeEntry   *widget.Entry
	borderEntry    *widget.Entry
	overlapEntry   *widget.Entry
	sidesSelect    *widget.Select
	algoSelect     *widget.Select
	gradientCheck  *widget.Check
	gradientSelect *widget.Select
	rotationCheck  *widget.Check
	opacityCheck   *widget.Check
	minOpacity     *widget.Slider
	maxOpacity     *widget.Slider
	allowOverlap   *widget.Check
	stickerDir     *widget.Entry
	autoPreview    *widget.Check
	keepAspect     *widget.Check

	content fyne.CanvasObject
}

// NewFramePanel creates the settings panel bound to the given frame config
func NewFramePanel(window fyne.Window, localization *Localization, frame *config.Frame, onChanged func()) *FramePanel {
	p := &FramePanel{
		window:       window,
		localization: localization,
		frame:        frame,
		onChanged:    onChanged,
	}

	p.createUI()
	p.Reload()
	return p
}

// Container returns the panel's root canvas object
func (p *FramePanel) Container() fyne.CanvasObject {
	return p.content
}

// createUI creates all panel widgets
func (p *FramePanel) createUI() {
	loc := p.localization

	p.templateWidth = p.newIntEntry(func(v int) { p.frame.TemplateWidth = v })
	p.templateHeight = p.newIntEntry(func(v int) { p.frame.TemplateHeight = v })
	p.outputWidth = p.newIntEntry(func(v int) { p.frame.OutputWidth = v })
	p.outputHeight = p.newIntEntry(func(v int) { p.frame.OutputHeight = v })

	p.densityLabel = widget.NewLabel("")
	p.densitySlider = widget.NewSlider(DensitySliderMin, DensitySliderMax)
	p.densitySlider.Step = 0.01
	p.densitySlider.OnChanged = func(v float64) {
		p.frame.StickerDensity = v
		p.densityLabel.SetText(fmt.Sprintf("%.2f", v))
		p.notifyChanged()
	}

	p.minSizeEntry = p.newIntEntry(func(v int) { p.frame.MinStickerSize = v })
	p.maxSizeEntry = p.newIntEntry(func(v int) { p.frame.MaxStickerSize = v })
	p.borderEntry = p.newIntEntry(func(v int) { p.frame.BorderWidth = v })
	p.overlapEntry = p.newIntEntry(func(v int) { p.frame.BorderOverlap = v })

	p.sidesSelect = widget.NewSelect(sidesOptions(), func(s string) {
		p.frame.Sides = config.BorderSides(s)
		p.notifyChanged()
	})

	p.algoSelect = widget.NewSelect(algorithmOptions(), func(s string) {
		p.frame.Algorithm = config.Algorithm(s)
		p.notifyChanged()
	})

	p.gradientSelect = widget.NewSelect(gradientOptions(), func(s string) {
		p.frame.GradientType = config.GradientType(s)
		p.notifyChanged()
	})

	p.gradientCheck = widget.NewCheck(loc.GetText(KeyGradientDensity), func(checked bool) {
		p.frame.GradientDensity = checked
		if checked {
			p.gradientSelect.Enable()
		} else {
			p.gradientSelect.Disable()
		}
		p.notifyChanged()
	})

	p.rotationCheck = widget.NewCheck(loc.GetText(KeyRotation), func(checked bool) {
		p.frame.RandomRotation = checked
		p.notifyChanged()
	})

	p.minOpacity = widget.NewSlider(OpacitySliderMin, OpacitySliderMax)
	p.minOpacity.Step = 0.05
	p.minOpacity.OnChanged = func(v float64) {
		p.frame.MinOpacity = v
		p.notifyChanged()
	}
	p.maxOpacity = widget.NewSlider(OpacitySliderMin, OpacitySliderMax)
	p.maxOpacity.Step = 0.05
	p.maxOpacity.OnChanged = func(v float64) {
		p.frame.MaxOpacity = v
		p.notifyChanged()
	}

	p.opacityCheck = widget.NewCheck(loc.GetText(KeyOpacity), func(checked bool) {
		p.frame.RandomOpacity = checked
		if checked {
			p.minOpacity.Show()
			p.maxOpacity.Show()
		} else {
			p.minOpacity.Hide()
			p.maxOpacity.Hide()
		}
		p.notifyChanged()
	})

	p.allowOverlap = widget.NewCheck(loc.GetText(KeyAllowOverlap), func(checked bool) {
		p.frame.OverlapAllowed = checked
		p.notifyChanged()
	})

	p.stickerDir = widget.NewEntry()
	p.stickerDir.SetPlaceHolder(loc.GetText(KeyStickerDir))
	p.stickerDir.OnChanged = func(s string) {
		p.frame.StickerDir = s
		p.notifyChanged()
	}
	browseBtn := widget.NewButton(loc.GetText(KeyBrowse), p.onBrowseStickers)
	stickerRow := container.NewBorder(nil, nil, nil, browseBtn, p.stickerDir)

	p.autoPreview = widget.NewCheck(loc.GetText(KeyAutoPreview), func(checked bool) {
		p.frame.AutoPreview = checked
	})
	p.keepAspect = widget.NewCheck(loc.GetText(KeyKeepAspect), func(checked bool) {
		p.frame.PreviewKeepAspect = checked
		p.notifyChanged()
	})

	loadPresetBtn := widget.NewButton(loc.GetText(KeyLoadPreset), p.onLoadPreset)
	savePresetBtn := widget.NewButton(loc.GetText(KeySavePreset), p.onSavePreset)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyStickerDir)+":"),
		stickerRow,
		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyTemplateSize)+":"),
		container.NewGridWithColumns(2, p.templateWidth, p.templateHeight),
		widget.NewLabel(loc.GetText(KeyOutputSize)+":"),
		container.NewGridWithColumns(2, p.outputWidth, p.outputHeight),
		widget.NewSeparator(),

		container.NewBorder(nil, nil, widget.NewLabel(loc.GetText(KeyDensity)+":"), p.densityLabel),
		p.densitySlider,

		widget.NewLabel(loc.GetText(KeyStickerSize)+":"),
		container.NewGridWithColumns(2, p.minSizeEntry, p.maxSizeEntry),
		widget.NewLabel(loc.GetText(KeyBorderWidth)+":"),
		p.borderEntry,
		widget.NewLabel(loc.GetText(KeyBorderOverlap)+":"),
		p.overlapEntry,
		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyAlgorithm)+":"),
		p.algoSelect,
		widget.NewLabel(loc.GetText(KeySides)+":"),
		p.sidesSelect,
		p.gradientCheck,
		p.gradientSelect,
		widget.NewSeparator(),

		p.rotationCheck,
		p.opacityCheck,
		p.minOpacity,
		p.maxOpacity,
		p.allowOverlap,
		widget.NewSeparator(),

		p.autoPreview,
		p.keepAspect,
		widget.NewSeparator(),

		container.NewGridWithColumns(2, loadPresetBtn, savePresetBtn),
	)

	p.content = container.NewVScroll(form)
}

// Reload pushes the current frame values into all widgets
func (p *FramePanel) Reload() {
	p.loading = true
	defer func() { p.loading = false }()

	p.templateWidth.SetText(strconv.Itoa(p.frame.TemplateWidth))
	p.templateHeight.SetText(strconv.Itoa(p.frame.TemplateHeight))
	p.outputWidth.SetText(strconv.Itoa(p.frame.OutputWidth))
	p.outputHeight.SetText(strconv.Itoa(p.frame.OutputHeight))

	p.densitySlider.SetValue(p.frame.StickerDensity)
	p.densityLabel.SetText(fmt.Sprintf("%.2f", p.frame.StickerDensity))

	p.minSizeEntry.SetText(strconv.Itoa(p.frame.MinStickerSize))
	p.maxSizeEntry.SetText(strconv.Itoa(p.frame.MaxStickerSize))
	p.borderEntry.SetText(strconv.Itoa(p.frame.BorderWidth))
	p.overlapEntry.SetText(strconv.Itoa(p.frame.BorderOverlap))

	p.sidesSelect.SetSelected(string(p.frame.Sides))
	p.algoSelect.SetSelected(string(p.frame.Algorithm))
	p.gradientCheck.SetChecked(p.frame.GradientDensity)
	p.gradientSelect.SetSelected(string(p.frame.GradientType))
	if p.frame.GradientDensity {
		p.gradientSelect.Enable()
	} else {
		p.gradientSelect.Disable()
	}

	p.rotationCheck.SetChecked(p.frame.RandomRotation)
	p.opacityCheck.SetChecked(p.frame.RandomOpacity)
	p.minOpacity.SetValue(p.frame.MinOpacity)
	p.maxOpacity.SetValue(p.frame.MaxOpacity)
	if p.frame.RandomOpacity {
		p.minOpacity.Show()
		p.maxOpacity.Show()
	} else {
		p.minOpacity.Hide()
		p.maxOpacity.Hide()
	}

	p.allowOverlap.SetChecked(p.frame.OverlapAllowed)
	p.stickerDir.SetText(p.frame.StickerDir)
	p.autoPreview.SetChecked(p.frame.AutoPreview)
	p.keepAspect.SetChecked(p.frame.PreviewKeepAspect)
}

// newIntEntry creates an entry that parses its text into an int setter
func (p *FramePanel) newIntEntry(set func(int)) *widget.Entry {
	entry := widget.NewEntry()
	entry.OnChanged = func(text string) {
		value, err := strconv.Atoi(text)
		if err != nil {
			return
		}
		set(value)
		p.notifyChanged()
	}
	return entry
}

// notifyChanged fires the change callback unless a reload is in progress
func (p *FramePanel) notifyChanged() {
	if p.loading {
		return
	}
	if p.onChanged != nil {
		p.onChanged()
	}
}

// onBrowseStickers handles sticker directory browsing
func (p *FramePanel) onBrowseStickers() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		p.stickerDir.SetText(uri.Path())
	}, p.window)
}

// onLoadPreset loads a YAML preset and reloads the panel
func (p *FramePanel) onLoadPreset() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		loaded, err := config.LoadPreset(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, p.window)
			return
		}

		// Keep the chosen sticker dir if the preset has none
		if loaded.StickerDir == "" {
			loaded.StickerDir = p.frame.StickerDir
		}
		*p.frame = loaded
		p.Reload()
		p.notifyChanged()
	}, p.window)
}

// onSavePreset saves the current config as a YAML preset
func (p *FramePanel) onSavePreset() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := config.SavePreset(writer.URI().Path(), *p.frame); err != nil {
			dialog.ShowError(err, p.window)
		}
	}, p.window)
}

func algorithmOptions() []string {
	return []string{
		string(config.AlgorithmRandom),
		string(config.AlgorithmUniform),
		string(config.AlgorithmGradient),
		string(config.AlgorithmCorner),
	}
}

func sidesOptions() []string {
	return []string{
		string(config.SidesAll),
		string(config.SidesTop),
		string(config.SidesBottom),
		string(config.SidesLeft),
		string(config.SidesRight),
		string(config.SidesTopBottom),
		string(config.SidesLeftRight),
		string(config.SidesCorners),
	}
}

func gradientOptions() []string {
	return []string{
		string(config.GradientLinear),
		string(config.GradientRadial),
	}
}
