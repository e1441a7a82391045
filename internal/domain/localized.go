package domain

import "encoding/json"

// Locale identifies one of the three supported languages.
type Locale string

const (
	LocaleKo Locale = "ko"
	LocaleEn Locale = "en"
	LocaleVi Locale = "vi"
)

// Locales lists the supported locales.
func Locales() []Locale {
	return []Locale{LocaleKo, LocaleEn, LocaleVi}
}

// LocalizedText is the canonical three-locale value object used for any
// user-facing text. Stored blobs may still contain the legacy plain-string
// form; decoding broadcasts such values into all three locale keys so
// business logic never sees the legacy shape.
type LocalizedText struct {
	Ko string `json:"ko"`
	En string `json:"en"`
	Vi string `json:"vi"`
}

// NewLocalizedText broadcasts a single value to every locale.
func NewLocalizedText(value string) LocalizedText {
	return LocalizedText{Ko: value, En: value, Vi: value}
}

// Get returns the value for the locale, falling back to Korean.
func (t LocalizedText) Get(locale Locale) string {
	switch locale {
	case LocaleEn:
		if t.En != "" {
			return t.En
		}
	case LocaleVi:
		if t.Vi != "" {
			return t.Vi
		}
	}
	return t.Ko
}

// IsZero reports whether no locale carries a value.
func (t LocalizedText) IsZero() bool {
	return t.Ko == "" && t.En == "" && t.Vi == ""
}

// UnmarshalJSON accepts both the object form and the legacy plain string.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		*t = NewLocalizedText(legacy)
		return nil
	}
	type plain LocalizedText
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*t = LocalizedText(obj)
	return nil
}
