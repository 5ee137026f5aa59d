package game

import "fmt"

// MessageKind classifies a user-facing message.
type MessageKind int

const (
	KindInfo MessageKind = iota
	KindError
	KindSuccess
)

func (k MessageKind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	}
	return "info"
}

// A Message is the user-facing outcome of a turn controller operation.
// Every validation failure is surfaced; this is a turn-based game and the
// player must be told why their move was rejected.
type Message struct {
	Kind MessageKind
	Text string
}

func errorMsg(format string, args ...any) Message {
	return Message{Kind: KindError, Text: fmt.Sprintf(format, args...)}
}

func infoMsg(format string, args ...any) Message {
	return Message{Kind: KindInfo, Text: fmt.Sprintf(format, args...)}
}

func successMsg(format string, args ...any) Message {
	return Message{Kind: KindSuccess, Text: fmt.Sprintf(format, args...)}
}
