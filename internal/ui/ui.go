package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/feed"
	"github.com/tartampluch/go-monthgrid/internal/grid"
	"github.com/tartampluch/go-monthgrid/internal/monthview"
	"github.com/tartampluch/go-monthgrid/internal/server"
	"github.com/tartampluch/go-monthgrid/internal/style"
)

// Options carries command line overrides. Zero values defer to the clock and
// the saved preferences.
type Options struct {
	Month     int // 1-12, 0 = current month
	Year      int // 0 = current year
	WeekStart int // config.FlagUnset = saved preference
	Mirrored  bool
	Lang      string
}

// MonthGridApp encapsulates the UI state, preferences, and the selection feed.
type MonthGridApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Translator  *style.Translator
	Ctx         context.Context

	Server  *server.FeedServer
	Profile style.Profile
	Clock   grid.Clock // Injected clock for testability

	View *monthview.MonthView
	Grid *MonthWidget

	prevBtn     *widget.Button
	nextBtn     *widget.Button
	todayBtn    *widget.Button
	settingsBtn *widget.Button
	yearLabel   *widget.Label
	yearEntry   *NumericalEntry
	statusLabel *widget.Label

	// selected survives month navigation so the feed keeps serving it.
	selected       time.Time
	settingsWindow fyne.Window
}

// NewMonthGridApp constructs the application and wires dependencies.
func NewMonthGridApp(a fyne.App, ctx context.Context, srv *server.FeedServer, profile style.Profile) *MonthGridApp {
	return &MonthGridApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Server:      srv,
		Profile:     profile,
		Clock:       grid.RealClock{}, // Default to real clock in production
	}
}

// Setup loads translations, builds the month view and the main window, and
// publishes the initial (empty) feed. It does not start any loop.
func (app *MonthGridApp) Setup(opts Options) {
	app.SetupI18n(opts.Lang)

	app.View = monthview.New(app.newStyle(), app.initialSpec(opts))
	app.View.OnDayClick = app.onDayClick

	mirrored := opts.Mirrored || app.Preferences.BoolWithFallback(config.PrefMirrored, app.Profile.Mirrored)
	app.Grid = NewMonthWidget(app.View, app.Profile.Insets, mirrored)
	app.Grid.OnHover = app.onHover

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	content := app.buildContent()
	app.Window.SetContent(content)

	// Open at the grid's preferred size; the minimum only guarantees the scaled layout.
	minSize, pref := content.MinSize(), app.Grid.PreferredSize()
	app.Window.Resize(fyne.NewSize(
		max(minSize.Width, pref.Width),
		minSize.Height-app.Grid.MinSize().Height+pref.Height,
	))
	app.Window.SetMaster()

	app.syncNavigation()
	app.publishFeed()
}

// Run launches the feed server and blocks in the UI loop until the main window closes.
func (app *MonthGridApp) Run() {
	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyPort, app.Server.Port,
			config.LogKeyComponent, config.CompUI)

		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	app.Window.ShowAndRun()
}

// buildContent lays out the navigation bar above the grid and the status line below it.
func (app *MonthGridApp) buildContent() fyne.CanvasObject {
	app.prevBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnPrev), theme.NavigateBackIcon(), app.PreviousMonth)
	app.nextBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnNext), theme.NavigateNextIcon(), app.NextMonth)
	app.todayBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnToday), theme.HomeIcon(), app.Today)
	app.settingsBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSettings), theme.SettingsIcon(), app.ShowSettingsWindow)

	app.yearLabel = widget.NewLabel(app.GetMsg(config.TKeyLblYear))
	app.yearEntry = NewNumericalEntry()
	app.yearEntry.Validator = app.validateYear
	app.yearEntry.OnSubmitted = app.onYearSubmitted
	yearField := container.NewGridWrap(
		fyne.NewSize(config.YearEntryWidth, app.yearEntry.MinSize().Height),
		app.yearEntry,
	)

	nav := container.NewHBox(
		app.prevBtn, app.nextBtn, app.todayBtn,
		layout.NewSpacer(),
		app.yearLabel, yearField, app.settingsBtn,
	)

	app.statusLabel = widget.NewLabel("")
	app.statusLabel.Alignment = fyne.TextAlignCenter
	app.updateStatus()

	return container.NewBorder(nav, app.statusLabel, nil, nil, app.Grid)
}

// initialSpec resolves the first month on screen from the flags and the clock.
func (app *MonthGridApp) initialSpec(opts Options) grid.MonthSpec {
	now := app.Clock.Now()
	month, year := int(now.Month())-1, now.Year()

	switch {
	case opts.Month >= 1 && opts.Month <= config.MonthsInYear:
		month = opts.Month - 1
	case opts.Month != 0:
		logInvalidFlag(config.FlagMonth, opts.Month)
	}

	switch {
	case opts.Year >= config.MinYear && opts.Year <= config.MaxYear:
		year = opts.Year
	case opts.Year != 0:
		logInvalidFlag(config.FlagYear, opts.Year)
	}

	spec, err := grid.FullMonth(month, year, app.weekStart(opts.WeekStart))
	if err != nil {
		// Inputs are validated above; fall back to the current month regardless.
		slog.Error(config.ErrInvalidArgument, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		spec, _ = grid.ForToday(app.Clock, time.Sunday)
	}
	return spec
}

// weekStart prefers a valid flag value, then the saved preference, then Sunday.
func (app *MonthGridApp) weekStart(flagValue int) time.Weekday {
	if flagValue != config.FlagUnset {
		if d := time.Weekday(flagValue); grid.IsValidWeekday(d) {
			return d
		}
		logInvalidFlag(config.FlagWeekStart, flagValue)
	}

	stored := time.Weekday(app.Preferences.IntWithFallback(config.PrefWeekStart, int(time.Sunday)))
	if !grid.IsValidWeekday(stored) {
		slog.Warn(config.MsgPreferenceSkip,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyKey, config.PrefWeekStart,
			config.LogKeyValue, int(stored))
		return time.Sunday
	}
	return stored
}

func logInvalidFlag(name string, value int) {
	slog.Warn(config.MsgInvalidFlag,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyFlag, name,
		config.LogKeyValue, value)
}

// ShowMonth puts spec on screen. The remembered selection is restored when it
// falls into that month.
func (app *MonthGridApp) ShowMonth(spec grid.MonthSpec) {
	if sel := app.selected; !sel.IsZero() && sel.Year() == spec.Year() && int(sel.Month())-1 == spec.Month() {
		if withSel, err := spec.WithSelectedDay(sel.Day()); err == nil {
			spec = withSel
		}
	}

	app.View.SetMonthSpec(spec)
	app.syncNavigation()

	slog.Debug(config.MsgMonthChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeySpec, spec)
}

// NextMonth advances the grid by one month.
func (app *MonthGridApp) NextMonth() {
	app.ShowMonth(app.View.MonthSpec().Next())
}

// PreviousMonth moves the grid back by one month.
func (app *MonthGridApp) PreviousMonth() {
	app.ShowMonth(app.View.MonthSpec().Previous())
}

// Today jumps to the clock's month, keeping the week start.
func (app *MonthGridApp) Today() {
	spec, err := grid.ForToday(app.Clock, app.View.MonthSpec().WeekStart())
	if err != nil {
		slog.Error(config.ErrInvalidArgument, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return
	}
	app.ShowMonth(spec)
}

// validateYear accepts config.MinYear through config.MaxYear.
func (app *MonthGridApp) validateYear(s string) error {
	year, err := strconv.Atoi(s)
	if err != nil || year < config.MinYear || year > config.MaxYear {
		return errors.New(app.GetMsg(config.TKeyErrYearRange))
	}
	return nil
}

// onYearSubmitted shows the same month in the typed year. Invalid input is
// discarded and the field reverts to the year on screen.
func (app *MonthGridApp) onYearSubmitted(s string) {
	if err := app.validateYear(s); err != nil {
		slog.Warn(config.MsgInvalidYear,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, s,
			config.LogKeyError, err)
		app.syncNavigation()
		return
	}

	year, _ := strconv.Atoi(s)
	current := app.View.MonthSpec()
	spec, err := grid.FullMonth(current.Month(), year, current.WeekStart())
	if err != nil {
		slog.Error(config.ErrInvalidArgument, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return
	}
	app.ShowMonth(spec)
}

// syncNavigation mirrors the month on screen into the navigation bar.
func (app *MonthGridApp) syncNavigation() {
	if app.yearEntry == nil {
		return
	}
	app.yearEntry.SetText(strconv.Itoa(app.View.MonthSpec().Year()))
}

// onDayClick selects the clicked day and republishes the feed.
func (app *MonthGridApp) onDayClick(click monthview.DayClick) {
	if err := app.View.SetSelectedDay(click.Day); err != nil {
		slog.Error(config.ErrInvalidSelection, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return
	}
	app.selected = click.Date
	app.updateStatus()
	app.publishFeed()
}

// onHover previews the description of the day under the mouse.
func (app *MonthGridApp) onHover(node monthview.Node) {
	if node.Visible {
		app.statusLabel.SetText(node.Description)
		return
	}
	app.updateStatus()
}

// updateStatus shows the remembered selection.
func (app *MonthGridApp) updateStatus() {
	if app.statusLabel == nil {
		return
	}
	if app.selected.IsZero() {
		app.statusLabel.SetText(app.GetMsg(config.TKeyLblNoSelect))
		return
	}

	desc := app.View.Style().DayDescription(app.selected)
	text, ok := app.Translator.Lookup(config.TKeyLblSelected, map[string]any{"Date": desc})
	if !ok {
		text = fmt.Sprintf(config.FallbackSelected, desc)
	}
	app.statusLabel.SetText(text)
}

// publishFeed rebuilds the iCalendar document for the selection and hands it to the server.
func (app *MonthGridApp) publishFeed() {
	gen := &feed.Generator{
		Clock:         app.Clock,
		FormatSummary: app.buildSummaryFormatter(),
	}

	data, err := gen.Build(app.selected)
	if err != nil {
		slog.Error(config.ErrFeedBuild, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return
	}
	app.Server.Publish(data)
}

// buildSummaryFormatter returns a closure that localizes the event summary.
func (app *MonthGridApp) buildSummaryFormatter() func(date time.Time) string {
	return func(date time.Time) string {
		desc := app.View.Style().DayDescription(date)
		if msg, ok := app.Translator.Lookup(config.TKeyEvtSummary, map[string]any{"Date": desc}); ok {
			return msg
		}
		return fmt.Sprintf(config.FallbackSummary, desc)
	}
}

// newStyle builds the stock style in the active language with the profile's metrics.
func (app *MonthGridApp) newStyle() *style.Default {
	return style.NewDefault(app.Translator, app.Profile.Metrics)
}

// refreshLabels re-applies translations to every static widget.
func (app *MonthGridApp) refreshLabels() {
	if app.Window == nil {
		return
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.prevBtn.SetText(app.GetMsg(config.TKeyBtnPrev))
	app.nextBtn.SetText(app.GetMsg(config.TKeyBtnNext))
	app.todayBtn.SetText(app.GetMsg(config.TKeyBtnToday))
	app.settingsBtn.SetText(app.GetMsg(config.TKeyBtnSettings))
	app.yearLabel.SetText(app.GetMsg(config.TKeyLblYear))
	app.updateStatus()
}
