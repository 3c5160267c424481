package lifetrack

// Settings holds user preferences.
type Settings struct {
	MainCurrency string `json:"mainCurrency"`
	IsDark       bool   `json:"isDark"`
	Language     string `json:"language"`
}

// MarshalJSON implements the json.Marshaler interface for Settings with a
// stable field order. IsDark is always written, even when false.
func (s Settings) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("mainCurrency", s.MainCurrency)
	w.Append("isDark", s.IsDark)
	w.Append("language", s.Language)
	return w.MarshalJSON()
}

// SettingsPatch is a partial update of Settings. Nil fields are left
// untouched by the merge.
type SettingsPatch struct {
	MainCurrency *string
	IsDark       *bool
	Language     *string
}

// merge returns the settings with the non-nil patch fields applied.
func (s Settings) merge(p SettingsPatch) Settings {
	if p.MainCurrency != nil {
		s.MainCurrency = *p.MainCurrency
	}
	if p.IsDark != nil {
		s.IsDark = *p.IsDark
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	return s
}
