package console

type RespAttack struct {
	Shot           string
	Row            int
	Col            int
	PositionState  rune
	ShipsLeft      int
	ElapsedSeconds int64
}

type RespResults struct {
	Seconds []int64
}

type RespEndGame struct {
	GameUuid          string
	PlayerMatchStatus int
}

type RespErr struct {
	ErrorDetails string
	Message      string
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
