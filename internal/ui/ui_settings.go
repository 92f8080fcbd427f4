package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/grid"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect  *widget.Select
	weekSelect  *widget.Select
	mirrorCheck *widget.Check
	entryPort   *NumericalEntry
}

// ShowSettingsWindow displays the preferences dialog. A second call focuses the open window.
func (app *MonthGridApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	saveAction := func() {
		// Only the port blocks saving; the other fields cannot hold invalid values.
		if err := sw.entryPort.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw, w)
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		widget.NewCard("", "", app.buildSettingsForm(sw)),
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets creates the inputs pre-filled from the saved preferences
// and the grid currently on screen.
func (app *MonthGridApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.Translator.Languages(), nil)
	sw.langSelect.SetSelected(app.Translator.Lang())

	days := make([]string, config.DaysInWeek)
	for d := range days {
		days[d] = app.GetMsg(fmt.Sprintf(config.TKeyWeekdayLongFmt, d))
	}
	sw.weekSelect = widget.NewSelect(days, nil)
	sw.weekSelect.SetSelectedIndex(int(app.View.MonthSpec().WeekStart()))

	sw.mirrorCheck = widget.NewCheck("", nil)
	sw.mirrorCheck.SetChecked(app.Grid.Mirrored)

	// Port: Numerical only, but requires strict Validation (Range 1-65535).
	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	sw.entryPort.Validator = app.validatePort

	return sw
}

func (app *MonthGridApp) buildSettingsForm(sw *settingsWidgets) *widget.Form {
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)

	itemWeek := widget.NewFormItem(app.GetMsg(config.TKeyLblWeekStart), sw.weekSelect)
	itemWeek.HintText = app.GetMsg(config.TKeyHelpWeekStart)

	itemMirror := widget.NewFormItem(app.GetMsg(config.TKeyLblMirrored), sw.mirrorCheck)
	itemMirror.HintText = app.GetMsg(config.TKeyHelpMirrored)

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)

	return widget.NewForm(itemLang, itemWeek, itemMirror, itemPort)
}

func (app *MonthGridApp) validatePort(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
	return nil
}

// saveSettings persists the preferences and applies them to the grid.
// A new port only takes effect on the next start.
func (app *MonthGridApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info(config.MsgSettingsSaved, config.LogKeyComponent, config.CompUISet)

	if sw.langSelect.Selected != "" {
		app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	}

	weekStart := time.Weekday(sw.weekSelect.SelectedIndex())
	if grid.IsValidWeekday(weekStart) {
		app.Preferences.SetInt(config.PrefWeekStart, int(weekStart))
	}

	app.Preferences.SetBool(config.PrefMirrored, sw.mirrorCheck.Checked)

	if sw.entryPort.Text != "" {
		app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)
	}

	// Trigger UI-wide updates
	app.UpdateLocalizer()
	app.applyWeekStart(app.weekStart(config.FlagUnset))
	app.Grid.SetMirrored(sw.mirrorCheck.Checked)

	w.Close()
}

// applyWeekStart re-lays the month on screen from a new first day of the week.
func (app *MonthGridApp) applyWeekStart(weekStart time.Weekday) {
	spec, err := app.View.MonthSpec().WithWeekStart(weekStart)
	if err != nil {
		slog.Error(config.ErrInvalidWeekday, config.LogKeyError, err, config.LogKeyComponent, config.CompUISet)
		return
	}
	app.ShowMonth(spec)
}
