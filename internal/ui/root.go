package ui

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/stickerframe/stickerframe/internal/config"
	"github.com/stickerframe/stickerframe/internal/generate"
	"github.com/stickerframe/stickerframe/internal/model"
	"github.com/stickerframe/stickerframe/internal/platform"
	"github.com/stickerframe/stickerframe/internal/sticker"
)

// SampleStickerDirName is created under the output directory when no
// sticker directory is configured and auto-samples are enabled
const SampleStickerDirName = "sample_stickers"

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	composer     generate.Composer
	settings     *config.Settings
	localization *Localization

	// Live frame configuration edited by the settings panel
	frame config.Frame

	panel   *FramePanel
	preview *PreviewPane

	generateBtn *widget.Button
	saveBtn     *widget.Button
	diceBtn     *widget.Button
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	// ID of the task whose updates drive the preview
	currentTaskID string

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex

	// Auto-preview debounce timer
	previewTimer *time.Timer
	previewMutex sync.Mutex

	rng *rand.Rand
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, composer generate.Composer) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		composer:     composer,
		settings:     settings,
		localization: localization,
		frame:        config.DefaultFrame(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Restore per-run knobs from preferences
	ui.frame.StickerDir = settings.GetStickerDirectory()
	ui.frame.OutputFormat = settings.GetOutputFormat()

	if ui.frame.StickerDir == "" && settings.GetAutoSampleStickers() {
		ui.frame.StickerDir = ui.ensureSampleStickers()
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for generation updates
	ui.composer.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	loc := ui.localization

	ui.generateBtn = widget.NewButton(loc.GetText(KeyGenerate), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance

	ui.diceBtn = widget.NewButton(IconDice+" "+loc.GetText(KeyRandomize), ui.onRandomizeClick)

	ui.saveBtn = widget.NewButton(IconSaveDisk+" "+loc.GetText(KeySaveFrame), ui.onSaveClick)
	ui.saveBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	buttons := container.NewHBox(ui.generateBtn, ui.diceBtn, ui.saveBtn)

	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), nil, buttons)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), nil, buttons)
	}

	// Status row with progress bar at the bottom
	ui.statusLabel = widget.NewLabel("")
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	statusRow := container.NewBorder(nil, nil, nil, ui.statusLabel, ui.progressBar)

	// Settings panel on the left, preview in the center
	ui.preview = NewPreviewPane(loc)
	ui.panel = NewFramePanel(ui.window, loc, &ui.frame, ui.onFrameChanged)

	content := container.NewBorder(
		topPanel,             // top
		statusRow,            // bottom
		ui.panel.Container(), // left
		nil,                  // right
		ui.preview.Container(),
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization

	ui.window.SetTitle(loc.GetText(KeyAppTitle))
	ui.generateBtn.SetText(loc.GetText(KeyGenerate))
	ui.diceBtn.SetText(IconDice + " " + loc.GetText(KeyRandomize))
	ui.saveBtn.SetText(IconSaveDisk + " " + loc.GetText(KeySaveFrame))
}

// onFrameChanged reacts to settings panel edits
func (ui *RootUI) onFrameChanged() {
	ui.preview.SetKeepAspect(ui.frame.PreviewKeepAspect)

	if !ui.frame.AutoPreview {
		return
	}

	// Debounce: sliders fire on every pixel of movement
	ui.previewMutex.Lock()
	defer ui.previewMutex.Unlock()

	if ui.previewTimer != nil {
		ui.previewTimer.Stop()
	}
	ui.previewTimer = time.AfterFunc(AutoPreviewDebounce, func() {
		fyne.Do(ui.onGenerateClick)
	})
}

// onGenerateClick starts a generation, or stops the running one
func (ui *RootUI) onGenerateClick() {
	if ui.currentTaskID != "" {
		if task, ok := ui.composer.GetTask(ui.currentTaskID); ok && task.Status.IsActive() {
			if err := ui.composer.StopTask(ui.currentTaskID); err != nil {
				log.Printf("Failed to stop task %s: %v", ui.currentTaskID, err)
			}
			ui.statusLabel.SetText(ui.localization.GetText(KeyStopping))
			return
		}
	}

	if ui.frame.StickerDir == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyChooseStickers))
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyChooseStickers)), ui.window.Canvas())
		return
	}

	// Remember the sticker directory between runs
	ui.settings.SetStickerDirectory(ui.frame.StickerDir)

	task, err := ui.composer.AddTask(ui.frame, 0)
	if err != nil {
		ui.statusLabel.SetText(IconError + " " + err.Error())
		return
	}

	log.Printf("Generation task added: ID=%s, algorithm=%s", task.ID, task.Config.Algorithm)

	ui.currentTaskID = task.ID
	ui.generateBtn.SetText(ui.localization.GetText(KeyStop))
	ui.saveBtn.Disable()
	ui.progressBar.SetValue(0)
	ui.progressBar.Show()
	ui.statusLabel.SetText(ui.localization.GetText(KeyGenerating))
}

// onRandomizeClick shuffles the visual knobs and regenerates
func (ui *RootUI) onRandomizeClick() {
	algorithms := algorithmOptions()
	sides := sidesOptions()

	ui.frame.Algorithm = config.Algorithm(algorithms[ui.rng.Intn(len(algorithms))])
	ui.frame.Sides = config.BorderSides(sides[ui.rng.Intn(len(sides))])
	ui.frame.StickerDensity = 0.3 + ui.rng.Float64()*0.7
	ui.frame.GradientDensity = ui.rng.Intn(2) == 0
	ui.frame.RandomRotation = ui.rng.Intn(4) > 0 // mostly on
	ui.frame.Validate()

	ui.panel.Reload()
	ui.onGenerateClick()
}

// onTaskUpdate handles task status changes from the generation service
func (ui *RootUI) onTaskUpdate(task *model.GenerationTask) {
	if task == nil || task.ID != ui.currentTaskID {
		return
	}

	// Debounce progress updates, but never drop terminal states
	if !task.Status.IsFinished() {
		ui.uiUpdateMutex.Lock()
		tooSoon := time.Since(ui.lastUIUpdate) < UIUpdateDebounce
		if !tooSoon {
			ui.lastUIUpdate = time.Now()
		}
		ui.uiUpdateMutex.Unlock()
		if tooSoon {
			return
		}
	}

	progress := task.Progress
	status := task.Status
	placed := task.Placed
	lastError := task.LastError
	result := task.Result

	fyne.Do(func() {
		ui.progressBar.SetValue(progress)

		switch status {
		case model.TaskStatusGenerating:
			ui.statusLabel.SetText(fmt.Sprintf("%s %d", ui.localization.GetText(KeyGenerating), placed))
		case model.TaskStatusCompleted:
			ui.progressBar.Hide()
			ui.generateBtn.SetText(ui.localization.GetText(KeyGenerate))
			ui.statusLabel.SetText(fmt.Sprintf("%s%s%d %s",
				ui.localization.GetText(KeyCompleted), MiddleDotSeparator,
				placed, ui.localization.GetText(KeyStickersLoaded)))
			ui.preview.SetImage(result)
			ui.saveBtn.Enable()
		case model.TaskStatusStopped:
			ui.progressBar.Hide()
			ui.generateBtn.SetText(ui.localization.GetText(KeyGenerate))
			ui.statusLabel.SetText(ui.localization.GetText(KeyStopped))
		case model.TaskStatusError:
			ui.progressBar.Hide()
			ui.generateBtn.SetText(ui.localization.GetText(KeyGenerate))
			ui.statusLabel.SetText(IconError + " " + ui.localization.GetText(KeyFailed) + ": " + lastError)
		}
	})
}

// onSaveClick saves the previewed frame to the output directory
func (ui *RootUI) onSaveClick() {
	task, ok := ui.composer.GetTask(ui.currentTaskID)
	if !ok || task.Result == nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNothingToSave)), ui.window.Canvas())
		return
	}

	outputDir := ui.settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		ui.statusLabel.SetText(IconError + " " + err.Error())
		return
	}

	path := filepath.Join(outputDir, generate.OutputFileName(task.Config))
	saved, err := generate.Save(task.Result, path, task.Config.OutputFormat, task.Config.Background.Color())
	if err != nil {
		ui.statusLabel.SetText(IconError + " " + err.Error())
		return
	}

	task.OutputPath = saved
	ui.statusLabel.SetText(ui.localization.GetText(KeySavedTo) + " " + saved)
	log.Printf("Frame saved to %s", saved)

	// Reveal the saved frame in the file manager
	if err := platform.OpenFileInManager(saved); err != nil {
		log.Printf("Failed to reveal %s: %v", saved, err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		// Pick up changes that affect generation
		ui.frame.OutputFormat = ui.settings.GetOutputFormat()
		ui.composer.SetMaxParallel(ui.settings.GetMaxParallelGenerations())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
	sd.Show()
}

// ensureSampleStickers writes the built-in sample set so a first run
// can generate something without hunting for images. Returns the
// directory, or empty on failure.
func (ui *RootUI) ensureSampleStickers() string {
	dir := filepath.Join(ui.settings.GetOutputDirectory(), SampleStickerDirName)

	if sticker.Count(dir) > 0 {
		return dir
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Failed to create sample sticker dir: %v", err)
		return ""
	}
	if _, err := sticker.WriteSampleSet(dir); err != nil {
		log.Printf("Failed to write sample stickers: %v", err)
		return ""
	}

	log.Printf("Sample stickers written to %s", dir)
	return dir
}
