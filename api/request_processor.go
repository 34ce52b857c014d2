package api

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strings"
	"time"

	"github.com/saeidalz13/battleship-console/db/sqlc"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
	mc "github.com/saeidalz13/battleship-console/models/console"
	"github.com/sqlc-dev/pqtype"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

// RequestProcessor owns the console. It reads one line at a
// time, hands it to a Request handler and renders the reply.
type RequestProcessor struct {
	stage       string
	in          *bufio.Reader
	out         io.Writer
	gameManager mb.GameManager
	q           sqlc.Querier
	ipnet       *net.IPNet
	analytics   *sqlc.AnalyticsManager
	clock       func() time.Time
}

type Option func(*RequestProcessor) error

func NewRequestProcessor(in io.Reader, out io.Writer, optFuncs ...Option) *RequestProcessor {
	rp := RequestProcessor{
		stage: StageDev,
		in:    bufio.NewReader(in),
		out:   out,
		clock: time.Now,
	}
	for _, opt := range optFuncs {
		if err := opt(&rp); err != nil {
			panic(err)
		}
	}

	if rp.gameManager == nil {
		rp.gameManager = mb.NewBattleshipGameManager(rp.clock)
	}

	if rp.q != nil {
		if rp.ipnet == nil {
			ipnet, err := getHostIpNet()
			if err != nil {
				log.Println("host address not found, using loopback:", err)
				ipnet = loopbackIpNet
			}
			rp.ipnet = &ipnet
		}
		rp.analytics = sqlc.NewDbManager(rp.q, pqtype.Inet{IPNet: *rp.ipnet, Valid: true}).Analytics
	}

	return &rp
}

func WithStage(stage string) Option {
	return func(rp *RequestProcessor) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		rp.stage = stage
		return nil
	}
}

// A nil querier keeps analytics disabled.
func WithQuerier(q sqlc.Querier) Option {
	return func(rp *RequestProcessor) error {
		rp.q = q
		return nil
	}
}

func WithHostIpNet(ipnet net.IPNet) Option {
	return func(rp *RequestProcessor) error {
		rp.ipnet = &ipnet
		return nil
	}
}

func WithClock(clock func() time.Time) Option {
	return func(rp *RequestProcessor) error {
		if clock == nil {
			return fmt.Errorf("clock must not be nil")
		}
		rp.clock = clock
		return nil
	}
}

func WithGameManager(gameManager mb.GameManager) Option {
	return func(rp *RequestProcessor) error {
		rp.gameManager = gameManager
		return nil
	}
}

// Lines have no length limit. A last line without a
// newline is still returned; io.EOF comes after it.
func (rp *RequestProcessor) readLine() (string, error) {
	line, err := rp.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Serve runs the main menu until the player quits or the
// input ends. Invalid choices are reported and asked again.
func (rp *RequestProcessor) Serve(ctx context.Context) error {
menuLoop:
	for {
		if _, err := io.WriteString(rp.out, textMenu); err != nil {
			return err
		}

		line, err := rp.readLine()
		if errors.Is(err, io.EOF) {
			break menuLoop
		}
		if err != nil {
			return err
		}

		msg := NewRequest(line).HandleMenuChoice()
		switch msg.Code {
		case mc.CodeNewGame:
			if err := rp.processGameSession(ctx); err != nil {
				return err
			}

		case mc.CodeShowResults:
			if err := writeResults(rp.out, NewRequest().HandleShowResults(rp.gameManager)); err != nil {
				return err
			}

		case mc.CodeQuit:
			break menuLoop

		default:
			if err := writeError(rp.out, msg.Error); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(rp.out, textProgramOver)
	return err
}

// Runs one game from a blank board to a win or an exit.
// End of input counts as an exit.
func (rp *RequestProcessor) processGameSession(ctx context.Context) error {
	game := rp.gameManager.CreateGame()
	rp.recordAnalytics(ctx, (*sqlc.AnalyticsManager).IncrementGamesStartedCount)

	defer func() {
		rp.gameManager.FinishGame(game)

		switch game.MatchStatus() {
		case mb.MatchStatusWon:
			rp.recordAnalytics(ctx, (*sqlc.AnalyticsManager).IncrementGamesWonCount)
		case mb.MatchStatusAbandoned:
			rp.recordAnalytics(ctx, (*sqlc.AnalyticsManager).IncrementGamesAbandonedCount)
		}

		if rp.stage == StageDev {
			rp.logAnalytics(ctx)
		}
	}()

sessionLoop:
	for {
		if err := writeBoard(rp.out, game.Grid()); err != nil {
			game.Abandon()
			return err
		}

		line, err := rp.readLine()
		if errors.Is(err, io.EOF) {
			game.Abandon()
			break sessionLoop
		}
		if err != nil {
			game.Abandon()
			return err
		}

		shot := mb.NormalizeShot(line)
		if shot == mc.ExitKeyword {
			msg := NewRequest().HandleExit(game)
			log.Printf("game %s exited by player\tmatch status: %d", msg.Payload.GameUuid, msg.Payload.PlayerMatchStatus)
			break sessionLoop
		}

		msg := NewRequest(shot).HandleAttack(game)
		if rp.stage == StageDev {
			log.Printf("game %s\tshot: %q\tcode: %d", game.Uuid(), shot, msg.Code)
		}

		if err := writeAttack(rp.out, msg); err != nil {
			game.Abandon()
			return err
		}

		if game.IsFinished() {
			break sessionLoop
		}
	}

	_, err := io.WriteString(rp.out, textGameOver)
	return err
}

func (rp *RequestProcessor) recordAnalytics(ctx context.Context, increment func(*sqlc.AnalyticsManager, context.Context) error) {
	if rp.analytics == nil {
		return
	}

	// for now not killing the game for it
	if err := increment(rp.analytics, ctx); err != nil {
		log.Println(err)
	}
}

// Prints the per-host counters kept so far.
func (rp *RequestProcessor) logAnalytics(ctx context.Context) {
	if rp.analytics == nil {
		return
	}

	started, err := rp.analytics.GetGamesStartedCount(ctx)
	if err != nil {
		log.Println(err)
		return
	}
	won, err := rp.analytics.GetGamesWonCount(ctx)
	if err != nil {
		log.Println(err)
		return
	}
	abandoned, err := rp.analytics.GetGamesAbandonedCount(ctx)
	if err != nil {
		log.Println(err)
		return
	}

	log.Printf("analytics\tstarted: %d\twon: %d\tabandoned: %d", started, won, abandoned)
}
