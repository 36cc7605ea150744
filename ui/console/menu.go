package console

import (
	"strings"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// ChooseMode asks which mode to play. Anything but "2" picks pve.
func (c *Console) ChooseMode() (mb.Mode, error) {
	c.Say(separator)
	c.Say("Choose a mode:")
	c.Say(" 1) Player vs computer")
	c.Say(" 2) Player vs player")

	choice, err := c.choose()
	if err != nil {
		return "", err
	}
	if choice == "2" {
		return mb.ModePvP, nil
	}
	return mb.ModePvE, nil
}

// ChooseDifficulty asks for the board size. Unknown answers pick the
// smallest board.
func (c *Console) ChooseDifficulty() (mb.Difficulty, error) {
	c.Say(separator)
	c.Say("Choose the board size:")
	c.Say(" 1) %dx%d", mb.GridSizeEasy, mb.GridSizeEasy)
	c.Say(" 2) %dx%d", mb.GridSizeNormal, mb.GridSizeNormal)
	c.Say(" 3) %dx%d", mb.GridSizeHard, mb.GridSizeHard)

	choice, err := c.choose()
	if err != nil {
		return 0, err
	}
	switch choice {
	case "2":
		return mb.GameDifficultyNormal, nil
	case "3":
		return mb.GameDifficultyHard, nil
	default:
		return mb.GameDifficultyEasy, nil
	}
}

func (c *Console) choose() (string, error) {
	c.Print("Your choice (default 1): ")
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
