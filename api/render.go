package api

import (
	"fmt"
	"io"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
	mc "github.com/saeidalz13/battleship-console/models/console"
)

const (
	textMenu = "\n--- Морской бой ---\n" +
		"1. Новая игра\n" +
		"2. Результаты\n" +
		"3. Выход\n" +
		"Выберите действие: "

	textBoardHeader = "\n--- Игровое поле ---\n"
	textShotPrompt  = "Куда стреляем (например, A2): "
	textResults     = "\n--- Топ 3 результатов ---\n"

	textHit     = "Попадание!\n"
	textMiss    = "Мимо!\n"
	textSunk    = "Корабль потоплен!\n"
	textVictory = "\nПоздравляю! Вы победили!\nПрошло времени: %d сек\n"

	textGameOver    = "\nИгра завершена.\n"
	textProgramOver = "Программа завершена.\n"

	textInvalidMenuChoice  = "Неверный выбор. Попробуйте снова."
	textInvalidShotFormat  = "Неверный формат ввода. Попробуйте снова."
	textInvalidCoordinates = "Неверные координаты. Попробуйте снова."
)

func writeBoard(w io.Writer, grid *mb.Grid) error {
	if _, err := io.WriteString(w, textBoardHeader); err != nil {
		return err
	}
	if err := grid.Render(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, textShotPrompt)
	return err
}

func writeError(w io.Writer, respErr *mc.RespErr) error {
	_, err := fmt.Fprintln(w, respErr.Message)
	return err
}

func writeAttack(w io.Writer, msg mc.Message[mc.RespAttack]) error {
	if msg.Error != nil {
		return writeError(w, msg.Error)
	}

	var text string
	switch msg.Code {
	case mc.CodeAttackMiss:
		text = textMiss
	case mc.CodeAttackHit:
		text = textHit
	case mc.CodeShipSunk:
		text = textHit + textSunk
	case mc.CodeGameWon:
		text = textHit + textSunk + fmt.Sprintf(textVictory, msg.Payload.ElapsedSeconds)
	}

	_, err := io.WriteString(w, text)
	return err
}

// Ranks are 1-based.
func writeResults(w io.Writer, msg mc.Message[mc.RespResults]) error {
	if _, err := io.WriteString(w, textResults); err != nil {
		return err
	}

	for i, seconds := range msg.Payload.Seconds {
		if _, err := fmt.Fprintf(w, "%d. %d сек\n", i+1, seconds); err != nil {
			return err
		}
	}
	return nil
}
