package app

import "strings"

// chatFallbackResponse is shown in place of an assistant reply when a turn
// fails. The failure is terminal for that turn; the user re-asks if needed.
const chatFallbackResponse = "Sorry, there was an error processing your message."

type ChatTurnStatus uint8

const (
	TurnPending ChatTurnStatus = iota
	TurnResolved
	TurnFailed
)

// ChatTurn is one user message and the reply slot it owns. Seq identifies
// the turn for the whole life of the transcript; responses are matched by
// Seq, never by position.
type ChatTurn struct {
	Seq      int
	Message  string
	Response string
	Status   ChatTurnStatus
}

// ChatController owns the transcript of the deep-dive conversation. Turns
// append optimistically on submit and resolve or fail later, out of order if
// the backend answers that way.
type ChatController struct {
	turns   []ChatTurn
	nextSeq int
}

func NewChatController() *ChatController {
	return &ChatController{nextSeq: 1}
}

// Submit appends a pending turn for the given text and returns it. Blank
// text is rejected and leaves the transcript untouched.
func (c *ChatController) Submit(text string) (ChatTurn, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatTurn{}, false
	}
	turn := ChatTurn{Seq: c.nextSeq, Message: text, Status: TurnPending}
	c.nextSeq++
	c.turns = append(c.turns, turn)
	return turn, true
}

// Resolve fills in the reply for the turn with the given seq. Returns false
// when no pending turn with that seq exists, which happens after a reset;
// such replies are dropped.
func (c *ChatController) Resolve(seq int, response string) bool {
	turn := c.pending(seq)
	if turn == nil {
		return false
	}
	turn.Response = response
	turn.Status = TurnResolved
	return true
}

// Fail marks the turn failed and substitutes the fixed fallback text for the
// reply.
func (c *ChatController) Fail(seq int) bool {
	turn := c.pending(seq)
	if turn == nil {
		return false
	}
	turn.Response = chatFallbackResponse
	turn.Status = TurnFailed
	return true
}

func (c *ChatController) pending(seq int) *ChatTurn {
	for i := range c.turns {
		if c.turns[i].Seq == seq && c.turns[i].Status == TurnPending {
			return &c.turns[i]
		}
	}
	return nil
}

// Reset drops the whole transcript. Seq keeps counting upward so replies to
// dropped turns can never attach to turns submitted afterwards.
func (c *ChatController) Reset() {
	c.turns = nil
}

func (c *ChatController) Turns() []ChatTurn {
	return c.turns
}

func (c *ChatController) Empty() bool {
	return len(c.turns) == 0
}

// PendingCount reports how many turns still await a reply.
func (c *ChatController) PendingCount() int {
	n := 0
	for i := range c.turns {
		if c.turns[i].Status == TurnPending {
			n++
		}
	}
	return n
}
