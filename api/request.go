package api

import (
	"errors"
	"log"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
	mc "github.com/saeidalz13/battleship-console/models/console"
)

// Every line read from the console becomes a Request.
// Handlers never touch the console themselves; they only
// turn the payload into a Message for the processor to render.
type Request struct {
	payload string
}

func NewRequest(payload ...string) Request {
	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) HandleMenuChoice() mc.Message[mc.NoPayload] {
	switch r.payload {
	case mc.MenuChoiceNewGame:
		return mc.NewMessage[mc.NoPayload](mc.CodeNewGame)

	case mc.MenuChoiceResults:
		return mc.NewMessage[mc.NoPayload](mc.CodeShowResults)

	case mc.MenuChoiceQuit:
		return mc.NewMessage[mc.NoPayload](mc.CodeQuit)

	default:
		msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidMenuChoice)
		msg.AddError(cerr.ErrInvalidMenuChoice(r.payload).Error(), textInvalidMenuChoice)
		return msg
	}
}

// Payload must already be normalized with mb.NormalizeShot.
func (r Request) HandleAttack(game *mb.Game) mc.Message[mc.RespAttack] {
	result, err := game.Attack(r.payload)
	if err != nil {
		var msg mc.Message[mc.RespAttack]

		switch {
		case errors.Is(err, cerr.ErrShotFormat):
			msg = mc.NewMessage[mc.RespAttack](mc.CodeInvalidShotFormat)
			msg.AddError(err.Error(), textInvalidShotFormat)

		case errors.Is(err, cerr.ErrOutOfBound):
			msg = mc.NewMessage[mc.RespAttack](mc.CodeInvalidCoordinates)
			msg.AddError(err.Error(), textInvalidCoordinates)

		default:
			msg = mc.NewMessage[mc.RespAttack](mc.CodeGameFinished)
			msg.AddError(err.Error(), textGameOver)
		}
		return msg
	}

	var code uint8
	switch {
	case game.MatchStatus() == mb.MatchStatusWon:
		code = mc.CodeGameWon
	case result.IsSunk():
		code = mc.CodeShipSunk
	case result.IsHit():
		code = mc.CodeAttackHit
	default:
		code = mc.CodeAttackMiss
	}

	msg := mc.NewMessage[mc.RespAttack](code)
	msg.AddPayload(mc.RespAttack{
		Shot:           result.Shot,
		Row:            result.Coords.Row,
		Col:            result.Coords.Col,
		PositionState:  result.PositionState,
		ShipsLeft:      result.ShipsLeft,
		ElapsedSeconds: result.ElapsedSeconds(),
	})
	return msg
}

func (r Request) HandleExit(game *mb.Game) mc.Message[mc.RespEndGame] {
	game.Abandon()

	msg := mc.NewMessage[mc.RespEndGame](mc.CodeGameAbandoned)
	msg.AddPayload(mc.RespEndGame{GameUuid: game.Uuid(), PlayerMatchStatus: game.MatchStatus()})
	return msg
}

func (r Request) HandleShowResults(gameManager mb.GameManager) mc.Message[mc.RespResults] {
	msg := mc.NewMessage[mc.RespResults](mc.CodeShowResults)
	msg.AddPayload(mc.RespResults{Seconds: gameManager.TopResults()})
	log.Printf("results requested: %d shown", len(msg.Payload.Seconds))
	return msg
}
