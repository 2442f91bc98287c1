package app

import "github.com/charmbracelet/lipgloss"

const (
	chatBubblePaddingVertical   = 0
	chatBubblePaddingHorizontal = 1
)

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	paperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	paperCheckedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	selectedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	dividerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	userBubbleStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Background(lipgloss.Color("236")).Padding(chatBubblePaddingVertical, chatBubblePaddingHorizontal)
	agentBubbleStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(chatBubblePaddingVertical, chatBubblePaddingHorizontal)
	systemBubbleStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("237")).Foreground(lipgloss.Color("245")).Padding(chatBubblePaddingVertical, chatBubblePaddingHorizontal)
	userStatusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	playerTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	playerTimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	trackBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	trackElapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	trackKnobStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	modalTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
)
