package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyStorageDirectory  = "storage_directory"
	KeyOutputFilename    = "output_filename"
	KeyJPEGQuality       = "jpeg_quality"
	KeyRequestTimeout    = "request_timeout"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeySettingsSaved     = "settings_saved"
	KeyDownloading       = "downloading"
	KeySaving            = "saving"
	KeySavedTo           = "saved_to"
	KeyDownloadCompleted = "download_completed"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyPathCopied        = "path_copied"
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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Downloader",
		KeyDownload:          "Download Image",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyStorageDirectory:  "Storage Directory",
		KeyOutputFilename:    "File Name",
		KeyJPEGQuality:       "JPEG Quality (1-100)",
		KeyRequestTimeout:    "Request Timeout, seconds (0 = none)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "Enter Image URL",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDownloading:       "Downloading image...",
		KeySaving:            "Saving image...",
		KeySavedTo:           "Saved to",
		KeyDownloadCompleted: "Download completed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyPathCopied:        "Path copied to clipboard",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузчик изображений",
		KeyDownload:          "Скачать изображение",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyStorageDirectory:  "Папка хранения",
		KeyOutputFilename:    "Имя файла",
		KeyJPEGQuality:       "Качество JPEG (1-100)",
		KeyRequestTimeout:    "Тайм-аут запроса, секунды (0 = нет)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "Введите URL изображения",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDownloading:       "Загрузка изображения...",
		KeySaving:            "Сохранение изображения...",
		KeySavedTo:           "Сохранено в",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL",
		KeyPathCopied:        "Путь скопирован в буфер обмена",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Baixador de Imagens",
		KeyDownload:          "Baixar Imagem",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyStorageDirectory:  "Diretório de Armazenamento",
		KeyOutputFilename:    "Nome do Arquivo",
		KeyJPEGQuality:       "Qualidade JPEG (1-100)",
		KeyRequestTimeout:    "Tempo limite, segundos (0 = nenhum)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterURL:          "Digite a URL da imagem",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDownloading:       "Baixando imagem...",
		KeySaving:            "Salvando imagem...",
		KeySavedTo:           "Salvo em",
		KeyDownloadCompleted: "Download concluído",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyPleaseEnterURL:    "Por favor, digite uma URL",
		KeyPathCopied:        "Caminho copiado",
	}
}
