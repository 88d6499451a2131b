package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyGenerate        = "generate"
	KeyStop            = "stop"
	KeySaveFrame       = "save_frame"
	KeyRandomize       = "randomize"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyStickerDir      = "sticker_directory"
	KeyOutputDir       = "output_directory"
	KeyMaxParallel     = "max_parallel"
	KeyOutputFormat    = "output_format"
	KeyAutoSamples     = "auto_samples"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyTemplateSize    = "template_size"
	KeyOutputSize      = "output_size"
	KeyDensity         = "density"
	KeyStickerSize     = "sticker_size"
	KeyBorderWidth     = "border_width"
	KeyBorderOverlap   = "border_overlap"
	KeySides           = "sides"
	KeyAlgorithm       = "algorithm"
	KeyGradientDensity = "gradient_density"
	KeyGradientType    = "gradient_type"
	KeyRotation        = "rotation"
	KeyOpacity         = "opacity"
	KeyAllowOverlap    = "allow_overlap"
	KeyAutoPreview     = "auto_preview"
	KeyKeepAspect      = "keep_aspect"
	KeyLoadPreset      = "load_preset"
	KeySavePreset      = "save_preset"
	KeySettingsSaved   = "settings_saved"
	KeyGenerating      = "generating"
	KeyStopping        = "stopping"
	KeyCompleted       = "completed"
	KeyStopped         = "stopped"
	KeyFailed          = "failed"
	KeySavedTo         = "saved_to"
	KeyChooseStickers  = "choose_stickers"
	KeyNothingToSave   = "nothing_to_save"
	KeyOpenFolder      = "open_folder"
	KeyStickersLoaded  = "stickers_loaded"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Sticker Frame Generator",
		KeyGenerate:        "Generate",
		KeyStop:            "Stop",
		KeySaveFrame:       "Save Frame",
		KeyRandomize:       "Randomize",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyStickerDir:      "Sticker Directory",
		KeyOutputDir:       "Output Directory",
		KeyMaxParallel:     "Max Parallel Generations",
		KeyOutputFormat:    "Output Format",
		KeyAutoSamples:     "Create sample stickers on first run",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyTemplateSize:    "Template Size",
		KeyOutputSize:      "Output Size",
		KeyDensity:         "Sticker Density",
		KeyStickerSize:     "Sticker Size",
		KeyBorderWidth:     "Border Width",
		KeyBorderOverlap:   "Border Overlap",
		KeySides:           "Sides",
		KeyAlgorithm:       "Placement Algorithm",
		KeyGradientDensity: "Gradient Density",
		KeyGradientType:    "Gradient Type",
		KeyRotation:        "Random Rotation",
		KeyOpacity:         "Random Opacity",
		KeyAllowOverlap:    "Allow Overlap",
		KeyAutoPreview:     "Auto Preview",
		KeyKeepAspect:      "Keep Aspect Ratio",
		KeyLoadPreset:      "Load Preset",
		KeySavePreset:      "Save Preset",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyGenerating:      "Generating frame...",
		KeyStopping:        "Stopping...",
		KeyCompleted:       "Frame generated",
		KeyStopped:         "Generation stopped",
		KeyFailed:          "Generation failed",
		KeySavedTo:         "Saved to",
		KeyChooseStickers:  "Choose a sticker directory first",
		KeyNothingToSave:   "Generate a frame first",
		KeyOpenFolder:      "Open Folder",
		KeyStickersLoaded:  "stickers loaded",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Генератор рамок из стикеров",
		KeyGenerate:        "Сгенерировать",
		KeyStop:            "Стоп",
		KeySaveFrame:       "Сохранить рамку",
		KeyRandomize:       "Случайно",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyStickerDir:      "Папка со стикерами",
		KeyOutputDir:       "Папка сохранения",
		KeyMaxParallel:     "Макс. параллельных генераций",
		KeyOutputFormat:    "Формат сохранения",
		KeyAutoSamples:     "Создавать примеры стикеров при первом запуске",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeyTemplateSize:    "Размер шаблона",
		KeyOutputSize:      "Размер результата",
		KeyDensity:         "Плотность стикеров",
		KeyStickerSize:     "Размер стикеров",
		KeyBorderWidth:     "Ширина рамки",
		KeyBorderOverlap:   "Выход за край",
		KeySides:           "Стороны",
		KeyAlgorithm:       "Алгоритм размещения",
		KeyGradientDensity: "Градиент плотности",
		KeyGradientType:    "Тип градиента",
		KeyRotation:        "Случайный поворот",
		KeyOpacity:         "Случайная прозрачность",
		KeyAllowOverlap:    "Разрешить перекрытие",
		KeyAutoPreview:     "Автопредпросмотр",
		KeyKeepAspect:      "Сохранять пропорции",
		KeyLoadPreset:      "Загрузить пресет",
		KeySavePreset:      "Сохранить пресет",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyGenerating:      "Генерация рамки...",
		KeyStopping:        "Остановка...",
		KeyCompleted:       "Рамка сгенерирована",
		KeyStopped:         "Генерация остановлена",
		KeyFailed:          "Ошибка генерации",
		KeySavedTo:         "Сохранено в",
		KeyChooseStickers:  "Сначала выберите папку со стикерами",
		KeyNothingToSave:   "Сначала сгенерируйте рамку",
		KeyOpenFolder:      "Открыть папку",
		KeyStickersLoaded:  "стикеров загружено",
	}
}
