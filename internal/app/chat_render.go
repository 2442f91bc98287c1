package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ChatRole string

const (
	ChatRoleUser   ChatRole = "user"
	ChatRoleAgent  ChatRole = "agent"
	ChatRoleSystem ChatRole = "system"
)

type ChatBlock struct {
	Role    ChatRole
	Text    string
	Pending bool
	Failed  bool
}

// turnsToBlocks flattens the transcript into renderable blocks: one user
// bubble per turn, plus an agent bubble once a reply exists. A failed turn's
// reply is the fallback text, rendered like any other agent reply.
func turnsToBlocks(turns []ChatTurn) []ChatBlock {
	blocks := make([]ChatBlock, 0, len(turns)*2)
	for _, turn := range turns {
		blocks = append(blocks, ChatBlock{
			Role:    ChatRoleUser,
			Text:    escapeMarkdown(turn.Message),
			Pending: turn.Status == TurnPending,
			Failed:  turn.Status == TurnFailed,
		})
		if turn.Status != TurnPending {
			blocks = append(blocks, ChatBlock{Role: ChatRoleAgent, Text: turn.Response})
		}
	}
	return blocks
}

func renderChatBlocks(blocks []ChatBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	lines := make([]string, 0, len(blocks)*4)
	for _, block := range blocks {
		blockLines := renderChatBlock(block, width)
		if len(blockLines) == 0 {
			continue
		}
		lines = append(lines, blockLines...)
		lines = append(lines, "")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func renderChatBlock(block ChatBlock, width int) []string {
	text := strings.TrimSpace(block.Text)
	if text == "" {
		return nil
	}
	maxBubbleWidth := width - 4
	if maxBubbleWidth < 10 {
		maxBubbleWidth = width
	}
	innerWidth := maxBubbleWidth - 2 - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	renderedText := renderMarkdown(text, innerWidth)
	var bubbleStyle lipgloss.Style
	align := lipgloss.Left
	switch block.Role {
	case ChatRoleUser:
		bubbleStyle = userBubbleStyle
		align = lipgloss.Right
	case ChatRoleAgent:
		bubbleStyle = agentBubbleStyle
	default:
		bubbleStyle = systemBubbleStyle
	}
	bubble := bubbleStyle.Render(renderedText)
	placed := lipgloss.PlaceHorizontal(width, align, bubble)
	lines := strings.Split(placed, "\n")
	if block.Role == ChatRoleUser && (block.Pending || block.Failed) {
		status := "(sending…)"
		if block.Failed {
			status = "(failed)"
		}
		statusLine := userStatusStyle.Render(status)
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, statusLine))
	}
	return lines
}
