package style_test

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/geometry"
	"github.com/tartampluch/go-monthgrid/internal/grid"
	"github.com/tartampluch/go-monthgrid/internal/monthview"
	"github.com/tartampluch/go-monthgrid/internal/style"
)

func TestTranslator_Languages(t *testing.T) {
	tr := style.NewTranslator("")

	assert.Equal(t, config.DefaultLanguage, tr.Lang())
	assert.ElementsMatch(t, config.SupportedLanguages, tr.Languages())
	assert.Equal(t, "en", tr.Tag().String())
}

func TestTranslator_Msg(t *testing.T) {
	tr := style.NewTranslator("fr")

	assert.Equal(t, "Précédent", tr.Msg(config.TKeyBtnPrev))
	assert.Equal(t, "missing_key", tr.Msg("missing_key"), "unknown keys come back unchanged")

	tr.SetLanguage("en")
	assert.Equal(t, "Previous", tr.Msg(config.TKeyBtnPrev))
	assert.Equal(t, "Selected: 05 March 2024", tr.Template(config.TKeyLblSelected, map[string]any{"Date": "05 March 2024"}))

	_, ok := tr.Lookup("missing_key", nil)
	assert.False(t, ok)
}

func TestDefault_Labels(t *testing.T) {
	feb5 := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.Local)

	tests := []struct {
		lang        string
		wantTitle   string
		wantWeekday string
		wantLong    string
		wantDesc    string
	}{
		{"en", "February 2024", "Th", "Thursday", "05 February 2024"},
		{"fr", "Février 2024", "Je", "Jeudi", "05 Février 2024"},
		{"de", "February 2024", "Th", "Thursday", "05 February 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			d := style.NewDefault(style.NewTranslator(tt.lang), geometry.DefaultMetrics())

			assert.Equal(t, tt.wantTitle, d.MonthLabel(1, 2024))
			assert.Equal(t, tt.wantWeekday, d.WeekdayLabel(time.Thursday))
			assert.Equal(t, tt.wantLong, d.WeekdayName(time.Thursday))
			assert.Equal(t, tt.wantDesc, d.DayDescription(feb5))
			assert.Equal(t, "7", d.DayLabel(7))
			assert.Equal(t, "31", d.DayLabel(31))
		})
	}
}

func TestDefault_EveryMonthHasAName(t *testing.T) {
	d := style.NewDefault(style.NewTranslator("en"), geometry.DefaultMetrics())
	for month := 0; month < config.MonthsInYear; month++ {
		name := d.MonthName(month)
		assert.False(t, strings.HasPrefix(name, "month_"), "month %d has no translation", month)
	}
}

type paintRecord struct {
	texts   map[string]monthview.TextPaint
	circles []color.Color
}

func (p *paintRecord) DrawText(text string, _ image.Point, paint monthview.TextPaint) {
	p.texts[text] = paint
}

func (p *paintRecord) DrawCircle(_ image.Point, _ int, fill color.Color) {
	p.circles = append(p.circles, fill)
}

func TestDefault_Draw(t *testing.T) {
	palette := style.DefaultPalette()
	d := style.NewDefault(style.NewTranslator("en"), geometry.DefaultMetrics())
	rec := &paintRecord{texts: make(map[string]monthview.TextPaint)}

	d.DrawMonthLabel(rec, "February 2024", image.Pt(0, 0))
	d.DrawWeekdayLabel(rec, "Th", image.Pt(0, 0))
	d.DrawDayLabel(rec, "1", image.Pt(0, 0), grid.StateEnabled)
	d.DrawDayLabel(rec, "2", image.Pt(0, 0), grid.StateDisabled)
	d.DrawDayLabel(rec, "3", image.Pt(0, 0), grid.StateSelected)
	d.DrawDayLabel(rec, "4", image.Pt(0, 0), grid.StatePressed)
	d.DrawDaySelected(rec, image.Pt(0, 0), 10)
	d.DrawDayPressed(rec, image.Pt(0, 0), 10)

	assert.True(t, rec.texts["February 2024"].Bold)
	assert.Equal(t, float32(config.MonthTextSize), rec.texts["February 2024"].Size)
	assert.Equal(t, palette.Weekday, rec.texts["Th"].Color)
	assert.Equal(t, palette.Day, rec.texts["1"].Color)
	assert.Equal(t, palette.DayDisabled, rec.texts["2"].Color)
	assert.Equal(t, palette.DaySelected, rec.texts["3"].Color)
	assert.Equal(t, palette.Day, rec.texts["4"].Color)
	assert.Equal(t, []color.Color{palette.Selector, palette.Highlight}, rec.circles)
}

func TestDefault_WithPalette(t *testing.T) {
	d := style.NewDefault(style.NewTranslator("en"), geometry.DefaultMetrics())
	custom := style.DefaultPalette()
	custom.Selector = color.NRGBA{R: 0xff, A: 0xff}

	c := d.WithPalette(custom)
	rec := &paintRecord{texts: make(map[string]monthview.TextPaint)}
	c.DrawDaySelected(rec, image.Pt(0, 0), 5)
	d.DrawDaySelected(rec, image.Pt(0, 0), 5)

	require.Len(t, rec.circles, 2)
	assert.Equal(t, custom.Selector, rec.circles[0])
	assert.Equal(t, style.DefaultPalette().Selector, rec.circles[1])
	assert.Same(t, d.Translator(), c.Translator())
}

// TestDefault_DrivesMonthView paints a real month through the default style.
func TestDefault_DrivesMonthView(t *testing.T) {
	d := style.NewDefault(style.NewTranslator("en"), geometry.DefaultMetrics())
	spec, err := grid.NewMonthSpec(1, 2024, time.Monday, 1, 29, 14)
	require.NoError(t, err)

	v := monthview.New(d, spec)
	in := geometry.UniformInsets(config.DefaultInset)
	v.Layout(v.PreferredSize(in), in, false)

	rec := &paintRecord{texts: make(map[string]monthview.TextPaint)}
	v.Paint(rec)

	assert.Contains(t, rec.texts, "February 2024")
	assert.Contains(t, rec.texts, "Mo")
	assert.Contains(t, rec.texts, "29")
	assert.Equal(t, "14 February 2024", v.Node(14).Description)
}
