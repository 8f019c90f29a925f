// internal/app/commands.go
package app

import (
	"errors"
	"fmt"

	"go-lane-defense/internal/defs"
)

// CommandType - вид входящей команды.
type CommandType string

const (
	CmdSelectTower   CommandType = "selectTowerType"
	CmdPlaceTower    CommandType = "placeTower"
	CmdPlaceSelected CommandType = "placeSelected"
	CmdSellTower     CommandType = "sellTower"
	CmdMergeTowers   CommandType = "mergeTowers"
	CmdUpgradeTower  CommandType = "upgradeTower"
	CmdStartWave     CommandType = "startWave"
	CmdStartNextWave CommandType = "startNextWave"
	CmdStopWave      CommandType = "stopWave"
	CmdPause         CommandType = "pause"
	CmdResume        CommandType = "resume"
)

// ErrMalformedCommand marks commands a host built incorrectly. Game rule
// rejections are reported as events, never as errors.
var ErrMalformedCommand = errors.New("malformed command")

// CellRef - координаты клетки в команде.
type CellRef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Command - сериализуемая команда от хоста. Поля-указатели заполняются
// только для команд, которым они нужны.
type Command struct {
	Type  CommandType    `json:"type"`
	Tower defs.TowerType `json:"tower,omitempty"`
	Cell  *CellRef       `json:"cell,omitempty"`
	Other *CellRef       `json:"other,omitempty"`
	Wave  int            `json:"wave,omitempty"`
}

func SelectTowerCommand(t defs.TowerType) Command {
	return Command{Type: CmdSelectTower, Tower: t}
}

func PlaceTowerCommand(t defs.TowerType, gx, gy int) Command {
	return Command{Type: CmdPlaceTower, Tower: t, Cell: &CellRef{X: gx, Y: gy}}
}

func PlaceSelectedCommand(gx, gy int) Command {
	return Command{Type: CmdPlaceSelected, Cell: &CellRef{X: gx, Y: gy}}
}

func SellTowerCommand(gx, gy int) Command {
	return Command{Type: CmdSellTower, Cell: &CellRef{X: gx, Y: gy}}
}

func MergeTowersCommand(ax, ay, bx, by int) Command {
	return Command{Type: CmdMergeTowers, Cell: &CellRef{X: ax, Y: ay}, Other: &CellRef{X: bx, Y: by}}
}

func UpgradeTowerCommand(gx, gy int) Command {
	return Command{Type: CmdUpgradeTower, Cell: &CellRef{X: gx, Y: gy}}
}

func StartWaveCommand(n int) Command { return Command{Type: CmdStartWave, Wave: n} }

func StartNextWaveCommand() Command { return Command{Type: CmdStartNextWave} }

func StopWaveCommand() Command { return Command{Type: CmdStopWave} }

func PauseCommand() Command { return Command{Type: CmdPause} }

func ResumeCommand() Command { return Command{Type: CmdResume} }

// Apply executes a command. It returns an error only for malformed commands.
func (g *Game) Apply(cmd Command) error {
	switch cmd.Type {
	case CmdSelectTower:
		if cmd.Tower != defs.TowerNone && !cmd.Tower.Valid() {
			return fmt.Errorf("%w: %s: unknown tower type %q", ErrMalformedCommand, cmd.Type, cmd.Tower)
		}
		g.SelectTowerType(cmd.Tower)
	case CmdPlaceTower:
		if cmd.Tower != defs.TowerNone && !cmd.Tower.Valid() {
			return fmt.Errorf("%w: %s: unknown tower type %q", ErrMalformedCommand, cmd.Type, cmd.Tower)
		}
		if cmd.Cell == nil {
			return missingField(cmd, "cell")
		}
		g.PlaceTower(cmd.Tower, cmd.Cell.X, cmd.Cell.Y)
	case CmdPlaceSelected:
		if cmd.Cell == nil {
			return missingField(cmd, "cell")
		}
		g.PlaceSelected(cmd.Cell.X, cmd.Cell.Y)
	case CmdSellTower:
		if cmd.Cell == nil {
			return missingField(cmd, "cell")
		}
		g.SellTower(cmd.Cell.X, cmd.Cell.Y)
	case CmdMergeTowers:
		if cmd.Cell == nil || cmd.Other == nil {
			return missingField(cmd, "cell and other")
		}
		g.MergeTowers(cmd.Cell.X, cmd.Cell.Y, cmd.Other.X, cmd.Other.Y)
	case CmdUpgradeTower:
		if cmd.Cell == nil {
			return missingField(cmd, "cell")
		}
		g.UpgradeTower(cmd.Cell.X, cmd.Cell.Y)
	case CmdStartWave:
		g.StartWave(cmd.Wave)
	case CmdStartNextWave:
		g.StartNextWave()
	case CmdStopWave:
		g.StopWave()
	case CmdPause:
		g.Pause()
	case CmdResume:
		g.Resume()
	default:
		return fmt.Errorf("%w: unknown command type %q", ErrMalformedCommand, cmd.Type)
	}
	return nil
}

func missingField(cmd Command, field string) error {
	return fmt.Errorf("%w: %s needs %s", ErrMalformedCommand, cmd.Type, field)
}
