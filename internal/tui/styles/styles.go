package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber      = lipgloss.Color("#E5A00D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
	Purple     = lipgloss.Color("#7C3AED")
)

// Spinner frames for loading animation
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Styles is the set of text styles for one theme
type Styles struct {
	Dark bool

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Badge    lipgloss.Style // Category labels
	Spinner  lipgloss.Style
}

// New returns the styles for the dark or light theme
func New(dark bool) Styles {
	text, muted, accent := SlateDark, SlateLight, Blue
	if dark {
		text, muted, accent = White, LightGray, Amber
	}

	return Styles{
		Dark:     dark,
		Title:    lipgloss.NewStyle().Foreground(text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(muted),
		Dim:      lipgloss.NewStyle().Foreground(DimGray),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Error:    lipgloss.NewStyle().Foreground(Red),
		Success:  lipgloss.NewStyle().Foreground(Green),
		Badge: lipgloss.NewStyle().
			Foreground(White).
			Background(Purple).
			Padding(0, 1),
		Spinner: lipgloss.NewStyle().Foreground(accent),
	}
}

// Saved and rating markers (unstyled)
const (
	SavedChar  = "★"
	RatingChar = "☆"
)
