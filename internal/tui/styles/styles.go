package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Citrus     = lipgloss.Color("#F59E0B")
	Lagoon     = lipgloss.Color("#0EA5E9")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Citrus)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	WarningIconStyle = lipgloss.NewStyle().
				Foreground(Citrus).
				Bold(true)
)

// Tab bar styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(Citrus).
			Bold(true).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Background(SlateLight).
				Padding(0, 2)

	TabGapStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Button style for the retry action
var (
	ButtonStyle = lipgloss.NewStyle().
		Foreground(White).
		Background(Lagoon).
		Bold(true).
		Padding(0, 2)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(Citrus)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(Citrus)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Citrus).
				Bold(true)
)

// Modal style for the help overlay
var (
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Citrus).
		Padding(1, 3)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Citrus)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)
