package console

type NoPayload bool

// Every exchange between the console and the turn engine
// is wrapped in a Message. Error is set on rejected input.
type Message[T any] struct {
	Code    uint8
	Payload T
	Error   *RespErr
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}
