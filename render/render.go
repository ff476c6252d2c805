package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/formatters"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/viewstate"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFiles returns the stylesheet and other assets served under /static/
func StaticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type cardData struct {
	Coin     interfaces.CoinSummary
	Favorite bool
}

type sortButtonData struct {
	Field     string
	Label     string
	Active    bool
	Ascending bool
}

type errorPanelData struct {
	Message     string
	Method      string
	Action      string
	ActionLabel string
}

// Renderer turns dashboard snapshots into HTML
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.New("dashboard").Funcs(funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Page writes the full dashboard page
func (r *Renderer) Page(w io.Writer, snapshot dashboard.Snapshot) error {
	return r.templates.ExecuteTemplate(w, "page", snapshot)
}

// Card writes a single coin card
func (r *Renderer) Card(w io.Writer, coin interfaces.CoinSummary, favorite bool) error {
	return r.templates.ExecuteTemplate(w, "card", cardData{Coin: coin, Favorite: favorite})
}

// Detail writes the detail modal
func (r *Renderer) Detail(w io.Writer, detail dashboard.DetailSnapshot) error {
	return r.templates.ExecuteTemplate(w, "detail", detail)
}

// ChangeClass returns the CSS class for a percentage change; zero counts as a gain
func ChangeClass(change float64) string {
	if change >= 0 {
		return "gain"
	}
	return "loss"
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"formatPrice":      formatters.FormatPrice,
		"formatVolume":     formatters.FormatVolume,
		"formatPercentage": formatters.FormatPercentage,
		"changeClass":      ChangeClass,
		"upper":            strings.ToUpper,
		"seq": func(n int) []int {
			return make([]int, max(n, 0))
		},
		"card": func(coin interfaces.CoinSummary, favorite bool) cardData {
			return cardData{Coin: coin, Favorite: favorite}
		},
		"sortButton": func(state viewstate.State, field, label string) sortButtonData {
			return sortButtonData{
				Field:     field,
				Label:     label,
				Active:    string(state.SortField) == field,
				Ascending: state.SortAscending,
			}
		},
		"errorPanel": func(message, action, label string) errorPanelData {
			return errorPanelData{Message: message, Method: "post", Action: action, ActionLabel: label}
		},
		"closePanel": func(message string) errorPanelData {
			return errorPanelData{Message: message, Method: "get", Action: "/", ActionLabel: "Close"}
		},
		"chart": func(prices []float64) *Chart {
			return NewChart(prices, ChartWidth, ChartHeight)
		},
		"hoverX": func(x, width float64) float64 {
			return x - width/2
		},
	}
}
