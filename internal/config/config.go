package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Month Grid"
	AppID             = "com.github.tartampluch.go-monthgrid"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion   = "version"
	FlagDebug     = "debug"
	FlagMonth     = "month"
	FlagYear      = "year"
	FlagWeekStart = "week-start"
	FlagRTL       = "rtl"
	FlagLang      = "lang"
	FlagProfile   = "profile"
	FlagPort      = "port"

	FlagDescVersion   = "Show application version and exit"
	FlagDescDebug     = "Enable debug logging to stdout"
	FlagDescMonth     = "Month to display (1-12, 0 = current month)"
	FlagDescYear      = "Year to display (0 = current year)"
	FlagDescWeekStart = "First day of the week (0 = Sunday ... 6 = Saturday, -1 = saved preference)"
	FlagDescRTL       = "Mirror the grid for right-to-left reading order"
	FlagDescLang      = "UI language (ISO 639-1), empty = saved preference"
	FlagDescProfile   = "Path to a YAML layout profile overriding the desired cell metrics"
	FlagDescPort      = "Port of the local selection feed, empty = saved preference"

	MsgVersionOutput = "%s version %s (%s/%s)\n"

	// FlagUnset marks integer flags the user did not provide.
	FlagUnset = -1
)

// -----------------------------------------------------------------------------
// Grid Geometry
// -----------------------------------------------------------------------------

const (
	DaysInWeek      = 7
	MaxWeeksInMonth = 6
	MonthsInYear    = 12

	// MaxDaysInMonth is the upper bound accepted for an enabled range before clamping.
	MaxDaysInMonth = 31

	// Desired (unscaled) metrics used when no layout profile is supplied.
	DefaultMonthHeight     = 56
	DefaultDayOfWeekHeight = 32
	DefaultDayHeight       = 40
	DefaultCellWidth       = 44
	DefaultSelectorRadius  = 20

	DefaultInset = 8

	// Text sizes handed to the host canvas.
	MonthTextSize   = 16
	WeekdayTextSize = 12
	DayTextSize     = 14
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 420

	PrefLanguage   = "language"
	PrefWeekStart  = "week_start"
	PrefMirrored   = "mirrored"
	PrefServerPort = "server_port"
	PrefLastRun    = "last_run_version"

	// YearEntryWidth keeps the year field readable next to the navigation buttons.
	YearEntryWidth = 80
	MinYear        = 1
	MaxYear        = 9999

	// GridMinScale is the smallest fraction of its preferred height the grid can be shrunk to.
	GridMinScale = 0.5
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// TKeyMonthFmt expects the 1-based month number.
	TKeyMonthFmt = "month_%d"
	// TKeyWeekdayFmt expects a time.Weekday value (0 = Sunday).
	TKeyWeekdayFmt = "weekday_short_%d"
	// TKeyWeekdayLongFmt expects a time.Weekday value (0 = Sunday).
	TKeyWeekdayLongFmt = "weekday_long_%d"

	TKeyMonthTitle     = "month_title"     // Requires Month, Year
	TKeyDayDescription = "day_description" // Requires Day, Month, Year

	TKeyWinTitle      = "win_title"
	TKeyWinSettings   = "win_settings_title"
	TKeyBtnPrev       = "btn_previous_month"
	TKeyBtnNext       = "btn_next_month"
	TKeyBtnToday      = "btn_today"
	TKeyBtnSettings   = "btn_settings"
	TKeyBtnSave       = "btn_save"
	TKeyBtnCancel     = "btn_cancel"
	TKeyLblLanguage   = "lbl_language"
	TKeyLblWeekStart  = "lbl_week_start"
	TKeyLblMirrored   = "lbl_mirrored"
	TKeyLblPort       = "lbl_server_port"
	TKeyLblYear       = "lbl_year"
	TKeyLblSelected   = "lbl_selected" // Requires Date
	TKeyLblNoSelect   = "lbl_no_selection"
	TKeyLblFooter     = "lbl_footer"
	TKeyEvtSummary    = "event_summary" // Requires Date
	TKeyErrPortReq    = "err_port_required"
	TKeyErrPortNum    = "err_port_number"
	TKeyErrPortRange  = "err_port_range"
	TKeyErrYearRange  = "err_year_range"
	TKeyHelpWeekStart = "help_week_start"
	TKeyHelpMirrored  = "help_mirrored"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18081"
	DefaultLanguage = "en"
	UIDSalt         = "go-monthgrid-v1-" // Salt for deterministic UID generation
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Month Grid//Selection Feed//EN"
	ICalCalName = "Selected Day"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gomonthgrid"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTEnd      = "DTEND"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// StubVCalendar is the minimal valid iCalendar object served while nothing is selected.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	DateFormatFullDash = "2006-01-02"
	UIDHashLength      = 16
	FormatHashInput    = "%s|%s"
	FormatUID          = "%s@%s"

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidArgument  = "invalid argument"
	ErrInvalidMonth     = "month outside 0-11"
	ErrInvalidWeekday   = "week start outside 0-6"
	ErrInvertedRange    = "enabled day range is inverted"
	ErrInvalidSelection = "selected day outside the month"
	ErrStaleGeometry    = "geometry queried before the first layout pass"
	ErrInvalidProfile   = "invalid layout profile"
	ErrProfileRead      = "failed to read layout profile"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrFeedBuild        = "failed to build selection feed"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackMonthTitle = "%s %d"      // Month name, year
	FallbackDayDesc    = "%02d %s %d" // Day, month name, year
	FallbackSummary    = "Selected day: %s"
	FallbackSelected   = "Selected: %s"

	TitleStartupError = "Startup Error"
	MsgPortBusy       = "Port %s is busy or unavailable."

	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgLayout         = "Layout recomputed"
	MsgSpecReplaced   = "Month spec replaced"
	MsgDayClicked     = "Day clicked"
	MsgGestureReject  = "Pointer down outside the grid, gesture rejected"
	MsgFeedUpdated    = "Selection feed updated"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Feed cache updated"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgProfileLoaded  = "Layout profile loaded"
	MsgSettingsOpen   = "Opening settings window"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
	MsgSettingsSaved  = "Saving preferences"
	MsgMonthChanged   = "Displayed month changed"
	MsgInvalidYear    = "Ignoring invalid year input"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgNodeActivated  = "Accessibility action performed"
	MsgInvalidFlag    = "Ignoring invalid command line value"
	MsgPreferenceSkip = "Ignoring invalid stored preference"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyValue     = "value"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyMonth     = "month"
	LogKeyYear      = "year"
	LogKeyDay       = "day"
	LogKeyWeekStart = "week_start"
	LogKeyEnabled   = "enabled_range"
	LogKeySelected  = "selected_day"
	LogKeySpec      = "spec"
	LogKeyMetrics   = "metrics"
	LogKeyWidth     = "width"
	LogKeyHeight    = "height"
	LogKeyRowHeight = "row_height"
	LogKeyColWidth  = "column_width"
	LogKeyHeader    = "header_height"
	LogKeyRadius    = "selector_radius"
	LogKeyMirrored  = "mirrored"
	LogKeyX         = "x"
	LogKeyY         = "y"
	LogKeyNode      = "node"
	LogKeyAction    = "action"
	LogKeyDate      = "date"
	LogKeyFlag      = "flag"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompView   = "month_view"
	CompStyle  = "style"
	CompI18n   = "i18n"
	CompFeed   = "feed"
	CompServer = "server"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
