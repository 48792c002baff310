package ui

import "github.com/mindguard/dashboard/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Mood, emotion and entry keys from the model
// package are used as keys directly.
const (
	KeyTitle      = "title"
	KeySubtitle   = "subtitle"
	KeyMoodHeader = "mood_header"
	KeyTimeframe  = "timeframe"
	KeyChartTitle = "chart_title"
	KeyAxisTime   = "axis_time"
	KeyAxisLevel  = "axis_level"
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

// GetTexts localizes every key in order
func (l *Localization) GetTexts(keys []string) []string {
	texts := make([]string, len(keys))
	for i, key := range keys {
		texts[i] = l.GetText(key)
	}
	return texts
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyTitle:              "Dashboard",
		KeySubtitle:           "Real-Time Emotional State",
		KeyMoodHeader:         "Mood Fluctuations",
		KeyTimeframe:          "Last 24 Hours",
		KeyChartTitle:         "Emotion Distribution · Last 24 Hours",
		KeyAxisTime:           "Time (Hours)",
		KeyAxisLevel:          "Emotion Level",
		model.MoodCalm:        "Calm",
		model.MoodHappy:       "Happy",
		model.MoodSad:         "Sad",
		model.EmotionJoy:      "Joy",
		model.EmotionAnger:    "Anger",
		model.EmotionSurprise: "Surprise",
		model.EntryDashboard:  "Dashboard",
		model.EntryAlerts:     "Alerts",
		model.EntryHistory:    "History",
		model.EntryInsights:   "Insights",
		model.EntrySettings:   "Settings",
		model.EntryProfile:    "Profile",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyTitle:              "Панель",
		KeySubtitle:           "Эмоциональное состояние в реальном времени",
		KeyMoodHeader:         "Колебания настроения",
		KeyTimeframe:          "Последние 24 часа",
		KeyChartTitle:         "Распределение эмоций · Последние 24 часа",
		KeyAxisTime:           "Время (часы)",
		KeyAxisLevel:          "Уровень эмоции",
		model.MoodCalm:        "Спокойствие",
		model.MoodHappy:       "Радость",
		model.MoodSad:         "Грусть",
		model.EmotionJoy:      "Восторг",
		model.EmotionAnger:    "Гнев",
		model.EmotionSurprise: "Удивление",
		model.EntryDashboard:  "Панель",
		model.EntryAlerts:     "Оповещения",
		model.EntryHistory:    "История",
		model.EntryInsights:   "Аналитика",
		model.EntrySettings:   "Настройки",
		model.EntryProfile:    "Профиль",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyTitle:              "Painel",
		KeySubtitle:           "Estado Emocional em Tempo Real",
		KeyMoodHeader:         "Flutuações de Humor",
		KeyTimeframe:          "Últimas 24 Horas",
		KeyChartTitle:         "Distribuição de Emoções · Últimas 24 Horas",
		KeyAxisTime:           "Tempo (Horas)",
		KeyAxisLevel:          "Nível de Emoção",
		model.MoodCalm:        "Calmo",
		model.MoodHappy:       "Feliz",
		model.MoodSad:         "Triste",
		model.EmotionJoy:      "Alegria",
		model.EmotionAnger:    "Raiva",
		model.EmotionSurprise: "Surpresa",
		model.EntryDashboard:  "Painel",
		model.EntryAlerts:     "Alertas",
		model.EntryHistory:    "Histórico",
		model.EntryInsights:   "Análises",
		model.EntrySettings:   "Configurações",
		model.EntryProfile:    "Perfil",
	}
}
