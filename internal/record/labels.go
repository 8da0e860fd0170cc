package record

// keyLabels maps schema keys to their Russian display labels. Unknown keys
// fall back to the raw key.
var keyLabels = map[string]string{
	"indications":          "Показания",
	"dosage":               "Схемы дозирования",
	"tags":                 "Теги",
	"indication":           "Схема",
	"startDosage":          "Начальная доза",
	"dose":                 "Доза",
	"unit":                 "Единица",
	"interval":             "Интервал",
	"intervalUnit":         "Единица интервала",
	"intakeCount":          "Кратность приема",
	"daily_dose":           "Суточная доза",
	"courseDurationMin":    "Минимальная длительность курса",
	"courseDurationMax":    "Максимальная длительность курса",
	"courseDuration":       "Длительность курса",
	"loading_dose":         "Нагрузочная доза",
	"courseMaxF":           "Ограничение курса (формула)",
	"expr":                 "Формула",
	"vars":                 "Переменные",
	"schemaDescription":    "Описание схемы",
	"step1":                "Шаг 1",
	"step2":                "Шаг 2",
	"step3":                "Шаг 3",
	"specialPatientGroups": "Особые группы пациентов",
	"icd10_code":           "Код МКБ-10",
	"disease":              "Состояние/группа",
	"administration":       "Способ применения",
	"time":                 "Время приема",
	"food":                 "Связь с приемом пищи",
	"form":                 "Лекарственная форма",
}

// Label returns the display label for a schema key, or the key itself when
// no translation is defined.
func Label(key string) string {
	if l, ok := keyLabels[key]; ok {
		return l
	}
	return key
}
