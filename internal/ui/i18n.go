package ui

import (
	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/style"
)

// SetupI18n loads the embedded catalogs. A non-empty lang overrides the saved
// preference for this session without persisting it.
func (app *MonthGridApp) SetupI18n(lang string) {
	if lang == "" {
		lang = app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	}
	app.Translator = style.NewTranslator(lang)
}

// UpdateLocalizer switches to the saved language and relabels the grid and the window.
func (app *MonthGridApp) UpdateLocalizer() {
	app.Translator.SetLanguage(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	if app.View != nil {
		app.View.SetStyle(app.newStyle())
	}
	app.refreshLabels()
}

// GetMsg is a helper to translate a key safely.
func (app *MonthGridApp) GetMsg(key string) string {
	if app.Translator == nil {
		return key
	}
	return app.Translator.Msg(key)
}
