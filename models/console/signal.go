package console

const (
	CodeNewGame uint8 = iota
	CodeShowResults
	CodeQuit
	CodeInvalidMenuChoice

	CodeAttackMiss
	CodeAttackHit
	CodeShipSunk

	// Last ship sunk
	CodeGameWon
	CodeGameAbandoned

	CodeInvalidShotFormat
	CodeInvalidCoordinates

	// Attack on a game that is already over
	CodeGameFinished
)

const (
	MenuChoiceNewGame = "1"
	MenuChoiceResults = "2"
	MenuChoiceQuit    = "3"

	ExitKeyword = "EXIT"
)
