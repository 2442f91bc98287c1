package app

import "testing"

func TestChatSubmitAppendsPendingTurn(t *testing.T) {
	c := NewChatController()
	turn, ok := c.Submit("  what changed in 2017?  ")
	if !ok {
		t.Fatal("submit rejected a valid message")
	}
	if turn.Message != "what changed in 2017?" || turn.Status != TurnPending {
		t.Fatalf("unexpected turn: %+v", turn)
	}
	if c.PendingCount() != 1 || len(c.Turns()) != 1 {
		t.Fatalf("unexpected transcript state: %+v", c.Turns())
	}
}

func TestChatSubmitRejectsBlank(t *testing.T) {
	c := NewChatController()
	if _, ok := c.Submit("   \n "); ok {
		t.Fatal("blank message accepted")
	}
	if !c.Empty() {
		t.Fatalf("transcript not empty: %+v", c.Turns())
	}
}

func TestChatResolveMatchesBySeqNotPosition(t *testing.T) {
	c := NewChatController()
	first, _ := c.Submit("first question")
	second, _ := c.Submit("second question")

	// Replies arrive out of order.
	if !c.Resolve(second.Seq, "second answer") {
		t.Fatal("resolve of second turn failed")
	}
	if !c.Resolve(first.Seq, "first answer") {
		t.Fatal("resolve of first turn failed")
	}

	turns := c.Turns()
	if turns[0].Response != "first answer" || turns[1].Response != "second answer" {
		t.Fatalf("responses attached to wrong turns: %+v", turns)
	}
}

func TestChatFailUsesFallbackText(t *testing.T) {
	c := NewChatController()
	turn, _ := c.Submit("doomed question")
	if !c.Fail(turn.Seq) {
		t.Fatal("fail did not find the turn")
	}
	got := c.Turns()[0]
	if got.Status != TurnFailed || got.Response != "Sorry, there was an error processing your message." {
		t.Fatalf("unexpected failed turn: %+v", got)
	}
	if c.PendingCount() != 0 {
		t.Fatal("failed turn still counted as pending")
	}
}

func TestChatStaleReplyAfterResetIsDropped(t *testing.T) {
	c := NewChatController()
	turn, _ := c.Submit("before reset")
	c.Reset()
	fresh, _ := c.Submit("after reset")

	if c.Resolve(turn.Seq, "stale answer") {
		t.Fatal("stale reply attached to reset transcript")
	}
	if !c.Resolve(fresh.Seq, "fresh answer") {
		t.Fatal("fresh reply rejected")
	}
	turns := c.Turns()
	if len(turns) != 1 || turns[0].Response != "fresh answer" {
		t.Fatalf("unexpected transcript: %+v", turns)
	}
}

func TestChatResolveIgnoresSettledTurns(t *testing.T) {
	c := NewChatController()
	turn, _ := c.Submit("question")
	c.Resolve(turn.Seq, "answer")
	if c.Resolve(turn.Seq, "second answer") {
		t.Fatal("resolved turn accepted a second reply")
	}
	if c.Fail(turn.Seq) {
		t.Fatal("resolved turn was failed afterwards")
	}
	if got := c.Turns()[0].Response; got != "answer" {
		t.Fatalf("response overwritten: %q", got)
	}
}
