package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type ChatInput struct {
	input textinput.Model
}

func NewChatInput(width int) *ChatInput {
	input := textinput.New()
	input.CharLimit = 2000
	input.Prompt = "> "
	input.Placeholder = "Ask about the selected papers"
	resizeChatInput(&input, width)
	return &ChatInput{input: input}
}

func resizeChatInput(input *textinput.Model, width int) {
	w := width - len(input.Prompt) - 1
	if w < 10 {
		w = 10
	}
	input.Width = w
}

func (c *ChatInput) Resize(width int) {
	resizeChatInput(&c.input, width)
}

func (c *ChatInput) Focus() {
	c.input.Focus()
}

func (c *ChatInput) Blur() {
	c.input.Blur()
}

func (c *ChatInput) Focused() bool {
	return c.input.Focused()
}

func (c *ChatInput) SetValue(value string) {
	c.input.SetValue(value)
}

func (c *ChatInput) Value() string {
	return c.input.Value()
}

func (c *ChatInput) Clear() {
	c.input.SetValue("")
}

func (c *ChatInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *ChatInput) View() string {
	return c.input.View()
}
