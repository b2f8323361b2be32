package messages

// ClearStatusMsg tells the model to drop the transient status line.
type ClearStatusMsg struct{}
