package locale

import (
	"golang.org/x/text/language"
)

var English Locale = &table{
	tag: language.English,
	months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	short: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	order:   orderMDY,
	pattern: "{m} {d}, {y}",
	long:    "{w}, {m} {d}, {y}",
}

var Turkish Locale = &table{
	tag: language.Turkish,
	months: [12]string{
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	},
	short: [12]string{
		"Oca", "Şub", "Mar", "Nis", "May", "Haz",
		"Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara",
	},
	weekdays: [7]string{
		"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
	},
	order:   orderDMY,
	pattern: "{d} {m} {y}",
	long:    "{d} {m} {y} {w}",
}

var German Locale = &table{
	tag: language.German,
	months: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	short: [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	weekdays: [7]string{
		"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
	},
	order:   orderDMY,
	pattern: "{d}. {m} {y}",
	long:    "{w}, {d}. {m} {y}",
}

var French Locale = &table{
	tag: language.French,
	months: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	short: [12]string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	weekdays: [7]string{
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	},
	order:   orderDMY,
	pattern: "{d} {m} {y}",
	long:    "{w} {d} {m} {y}",
}

var Spanish Locale = &table{
	tag: language.Spanish,
	months: [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	short: [12]string{
		"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sept", "oct", "nov", "dic",
	},
	weekdays: [7]string{
		"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
	},
	order:   orderDMY,
	pattern: "{d} de {m} de {y}",
	long:    "{w}, {d} de {m} de {y}",
}

var Japanese Locale = &table{
	tag: language.Japanese,
	months: [12]string{
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	short: [12]string{
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	weekdays: [7]string{
		"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日",
	},
	order:   orderYMD,
	pattern: "{y}年{m}{d}日",
	long:    "{y}年{m}{d}日{w}",
}

// builtin lists the supported locales; the first entry is the fallback.
var builtin = []Locale{English, Turkish, German, French, Spanish, Japanese}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(builtin))
	for i, l := range builtin {
		tags[i] = l.Tag()
	}
	return language.NewMatcher(tags)
}()

// Lookup returns the built-in locale closest to the BCP 47 tag, falling back
// to English for empty, malformed or unsupported tags.
func Lookup(tag string) Locale {
	if tag == "" {
		return English
	}
	t, err := language.Parse(tag)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return English
	}
	return builtin[idx]
}

// Supported returns the tags of the built-in locales.
func Supported() []string {
	out := make([]string, len(builtin))
	for i, l := range builtin {
		out[i] = l.Tag().String()
	}
	return out
}
