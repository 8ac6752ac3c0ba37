package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"

	KeyNavStudy     = "nav_study"
	KeyNavDecks     = "nav_decks"
	KeyNavCreate    = "nav_create"
	KeyNavBrowse    = "nav_browse"
	KeyNavAnalytics = "nav_analytics"
	KeyNavGroups    = "nav_groups"
	KeyNavTutor     = "nav_tutor"
	KeyTheme        = "theme"

	KeyActionSearch        = "action_search"
	KeyActionNotifications = "action_notifications"
	KeyActionSettings      = "action_settings"
	KeyActionAccount       = "action_account"

	KeyInTheForge  = "in_the_forge"
	KeyDayStreak   = "day_streak"
	KeyXP          = "xp"
	KeyDailyGoal   = "daily_goal"
	KeyStatMastery = "stat_mastery"
	KeyStatAcc     = "stat_accuracy"
	KeyStatSession = "stat_sessions"
	KeyStatLevel   = "stat_level"

	KeyCreateDeck       = "create_deck"
	KeyCreateDeckHint   = "create_deck_hint"
	KeyMyDecks          = "my_decks"
	KeyMyDecksHint      = "my_decks_hint"
	KeyAIGenerate       = "ai_generate"
	KeyAIGenerateHint   = "ai_generate_hint"
	KeyComingSoon       = "coming_soon"
	KeyComingSoonDetail = "coming_soon_detail"

	KeyPreviousCard = "previous_card"
	KeyNextCard     = "next_card"
	KeyRevealAnswer = "reveal_answer"
	KeyHideAnswer   = "hide_answer"
	KeyIncorrect    = "incorrect"
	KeyReview       = "review"
	KeyCorrect      = "correct"
	KeyEasy         = "easy"
	KeyMedium       = "medium"
	KeyHard         = "hard"

	KeySettings      = "settings"
	KeyLanguage      = "language"
	KeyAdvanceDelay  = "advance_delay"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"
	KeyInvalidDelay  = "invalid_delay"
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
		lang = systemLanguage()
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
		"pt": "Português",
	}
}

// systemLanguage maps the POSIX locale to a two-letter code, e.g. ru_RU.UTF-8 -> ru
func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if len(value) >= 2 && value != "C" && value != "POSIX" {
			return strings.ToLower(value[:2])
		}
	}
	return "en"
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle: "FlashForge",

		KeyNavStudy:     "Study",
		KeyNavDecks:     "My Decks",
		KeyNavCreate:    "Create",
		KeyNavBrowse:    "Browse",
		KeyNavAnalytics: "Analytics",
		KeyNavGroups:    "Groups",
		KeyNavTutor:     "AI Tutor",
		KeyTheme:        "Theme",

		KeyActionSearch:        "Search",
		KeyActionNotifications: "Notifications",
		KeyActionSettings:      "Settings",
		KeyActionAccount:       "Account",

		KeyInTheForge:  "IN THE FORGE:",
		KeyDayStreak:   "%d Day Streak",
		KeyXP:          "%d XP",
		KeyDailyGoal:   "Daily Goal Progress: %d%%",
		KeyStatMastery: "Cards Mastered",
		KeyStatAcc:     "Accuracy",
		KeyStatSession: "Study Sessions",
		KeyStatLevel:   "Current Level",

		KeyCreateDeck:       "Create New Deck",
		KeyCreateDeckHint:   "Build custom flash cards",
		KeyMyDecks:          "My Decks",
		KeyMyDecksHint:      "Browse your decks",
		KeyAIGenerate:       "AI Generate",
		KeyAIGenerateHint:   "Create cards with AI",
		KeyComingSoon:       "Coming soon",
		KeyComingSoonDetail: "This feature is not available yet.",

		KeyPreviousCard: "Previous Card",
		KeyNextCard:     "Next Card",
		KeyRevealAnswer: "Reveal Answer",
		KeyHideAnswer:   "Hide Answer",
		KeyIncorrect:    "Incorrect",
		KeyReview:       "Review",
		KeyCorrect:      "Correct",
		KeyEasy:         "EASY",
		KeyMedium:       "MEDIUM",
		KeyHard:         "HARD",

		KeySettings:      "Settings",
		KeyLanguage:      "Language",
		KeyAdvanceDelay:  "Auto-advance delay (ms)",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettingsSaved: "Settings saved successfully!",
		KeyInvalidDelay:  "Delay must be a whole number of milliseconds",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle: "FlashForge",

		KeyNavStudy:     "Учёба",
		KeyNavDecks:     "Мои колоды",
		KeyNavCreate:    "Создать",
		KeyNavBrowse:    "Обзор",
		KeyNavAnalytics: "Аналитика",
		KeyNavGroups:    "Группы",
		KeyNavTutor:     "ИИ-наставник",
		KeyTheme:        "Тема",

		KeyActionSearch:        "Поиск",
		KeyActionNotifications: "Уведомления",
		KeyActionSettings:      "Настройки",
		KeyActionAccount:       "Аккаунт",

		KeyInTheForge:  "В КУЗНИЦЕ:",
		KeyDayStreak:   "Серия: %d дн.",
		KeyXP:          "%d XP",
		KeyDailyGoal:   "Дневная цель: %d%%",
		KeyStatMastery: "Карточек освоено",
		KeyStatAcc:     "Точность",
		KeyStatSession: "Сессий",
		KeyStatLevel:   "Уровень",

		KeyCreateDeck:       "Новая колода",
		KeyCreateDeckHint:   "Соберите свои карточки",
		KeyMyDecks:          "Мои колоды",
		KeyMyDecksHint:      "Просмотр колод",
		KeyAIGenerate:       "Генерация ИИ",
		KeyAIGenerateHint:   "Карточки с помощью ИИ",
		KeyComingSoon:       "Скоро",
		KeyComingSoonDetail: "Эта функция пока недоступна.",

		KeyPreviousCard: "Предыдущая",
		KeyNextCard:     "Следующая",
		KeyRevealAnswer: "Показать ответ",
		KeyHideAnswer:   "Скрыть ответ",
		KeyIncorrect:    "Неверно",
		KeyReview:       "Повторить",
		KeyCorrect:      "Верно",
		KeyEasy:         "ЛЕГКО",
		KeyMedium:       "СРЕДНЕ",
		KeyHard:         "СЛОЖНО",

		KeySettings:      "Настройки",
		KeyLanguage:      "Язык",
		KeyAdvanceDelay:  "Задержка перехода (мс)",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyInvalidDelay:  "Задержка должна быть целым числом миллисекунд",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle: "FlashForge",

		KeyNavStudy:     "Estudar",
		KeyNavDecks:     "Meus Baralhos",
		KeyNavCreate:    "Criar",
		KeyNavBrowse:    "Explorar",
		KeyNavAnalytics: "Análises",
		KeyNavGroups:    "Grupos",
		KeyNavTutor:     "Tutor IA",
		KeyTheme:        "Tema",

		KeyActionSearch:        "Buscar",
		KeyActionNotifications: "Notificações",
		KeyActionSettings:      "Configurações",
		KeyActionAccount:       "Conta",

		KeyInTheForge:  "NA FORJA:",
		KeyDayStreak:   "%d Dias Seguidos",
		KeyXP:          "%d XP",
		KeyDailyGoal:   "Meta Diária: %d%%",
		KeyStatMastery: "Cartões Dominados",
		KeyStatAcc:     "Precisão",
		KeyStatSession: "Sessões",
		KeyStatLevel:   "Nível Atual",

		KeyCreateDeck:       "Novo Baralho",
		KeyCreateDeckHint:   "Monte seus próprios cartões",
		KeyMyDecks:          "Meus Baralhos",
		KeyMyDecksHint:      "Veja seus baralhos",
		KeyAIGenerate:       "Gerar com IA",
		KeyAIGenerateHint:   "Crie cartões com IA",
		KeyComingSoon:       "Em breve",
		KeyComingSoonDetail: "Este recurso ainda não está disponível.",

		KeyPreviousCard: "Cartão Anterior",
		KeyNextCard:     "Próximo Cartão",
		KeyRevealAnswer: "Mostrar Resposta",
		KeyHideAnswer:   "Ocultar Resposta",
		KeyIncorrect:    "Errei",
		KeyReview:       "Revisar",
		KeyCorrect:      "Acertei",
		KeyEasy:         "FÁCIL",
		KeyMedium:       "MÉDIO",
		KeyHard:         "DIFÍCIL",

		KeySettings:      "Configurações",
		KeyLanguage:      "Idioma",
		KeyAdvanceDelay:  "Atraso do avanço (ms)",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyInvalidDelay:  "O atraso deve ser um número inteiro de milissegundos",
	}
}
