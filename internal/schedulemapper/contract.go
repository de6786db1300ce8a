package schedulemapper

// TitleAvailable translation key of the weekly availability event title
const TitleAvailable = "schedule.available"

// Translator переводит ключи подписей календаря на язык пользователя
type Translator interface {
	Translate(key string) string
}

// MapTranslator переводчик на основе словаря; неизвестный ключ возвращается как есть
type MapTranslator map[string]string

func (t MapTranslator) Translate(key string) string {
	if value, ok := t[key]; ok {
		return value
	}
	return key
}

// Translations переводчики по языкам с языком по умолчанию
type Translations struct {
	byLanguage      map[string]MapTranslator
	defaultLanguage string
}

// NewTranslations создает набор переводов
func NewTranslations(byLanguage map[string]map[string]string, defaultLanguage string) *Translations {
	translations := &Translations{
		byLanguage:      make(map[string]MapTranslator, len(byLanguage)),
		defaultLanguage: defaultLanguage,
	}
	for language, dictionary := range byLanguage {
		translations.byLanguage[language] = MapTranslator(dictionary)
	}
	return translations
}

// For возвращает переводчик языка; для неизвестного языка используется язык по умолчанию
func (t *Translations) For(language string) Translator {
	if translator, ok := t.byLanguage[language]; ok {
		return translator
	}
	if translator, ok := t.byLanguage[t.defaultLanguage]; ok {
		return translator
	}
	return MapTranslator{}
}
