// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/grid"
)

const maxLogs = 12

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// eventLog собирает строки для боковой панели. Живёт по указателю,
// потому что модель bubbletea копируется.
type eventLog struct {
	lines []string
}

func (l *eventLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if len(l.lines) > 200 {
		l.lines = l.lines[len(l.lines)-200:]
	}
}

func (l *eventLog) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.TowerPlacedData:
		l.add("+ %s at %d,%d", d.Tower.Type, d.Tower.GX, d.Tower.GY)
	case event.TowerSoldData:
		l.add("- %s sold for %d", d.Tower.Type, d.Refund)
	case event.TowerMergedData:
		l.add("* merged %s -> %s", d.Result.Type, d.Result.Level)
	case event.TowerUpgradedData:
		l.add("^ %s -> %s (%d)", d.Tower.Type, d.Tower.Level, d.Cost)
	case event.PlacementFailedData:
		l.add("! %s", d.Message)
	case event.CommandRejectedData:
		l.add("! %s: %s", d.Command, d.Message)
	case event.EnemyReachedEndData:
		l.add("breach by %s, lane %d", d.Enemy.Type, d.Enemy.Lane)
	case event.WaveStartedData:
		l.add("wave %d: %d enemies", d.Wave, d.Enemies)
	case event.WaveStoppedData:
		l.add("wave %d stopped, %d spawns cancelled", d.Wave, d.Cancelled)
	case event.WaveCompletedData:
		l.add("wave %d cleared, bonus %d", d.Wave, d.Bonus)
	case event.GameOverData:
		if d.Won {
			l.add("VICTORY, score %d", d.Score)
		} else {
			l.add("DEFEAT at wave %d", d.Wave)
		}
	}
}

type model struct {
	game      *app.Game
	log       *eventLog
	cx, cy    int
	mergeFrom *grid.Coord
	tickMs    float64
	tickDur   time.Duration
}

func initialModel() model {
	envFile := flag.String("env", ".env", "settings file")
	seed := flag.Int64("seed", 0, "PRNG seed (0 = settings or time)")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if settings.BalancePath != "" {
		if err := defs.LoadBalance(settings.BalancePath); err != nil {
			log.Fatalf("balance: %v", err)
		}
	}

	g := app.NewGame(settings)
	events := &eventLog{}
	g.EventDispatcher.SubscribeAll(events)
	return model{
		game:    g,
		log:     events,
		cy:      config.GridRows / 2,
		tickMs:  settings.TickMs,
		tickDur: time.Duration(settings.TickMs * float64(time.Millisecond)),
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.tickDur)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.Tick(m.tickMs)
		return m, tickCmd(m.tickDur)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.cy = max(m.cy-1, 0)
		case "down", "j":
			m.cy = min(m.cy+1, config.GridRows-1)
		case "left", "h":
			m.cx = max(m.cx-1, 0)
		case "right", "l":
			m.cx = min(m.cx+1, config.GridCols-1)
		case "1", "2", "3", "4":
			i := int(msg.String()[0] - '1')
			m.game.SelectTowerType(defs.AllTowerTypes[i])
		case "enter", " ":
			m.game.PlaceSelected(m.cx, m.cy)
		case "x":
			m.game.SellTower(m.cx, m.cy)
		case "u":
			m.game.UpgradeTower(m.cx, m.cy)
		case "m":
			if m.mergeFrom == nil {
				m.mergeFrom = &grid.Coord{X: m.cx, Y: m.cy}
			} else {
				m.game.MergeTowers(m.mergeFrom.X, m.mergeFrom.Y, m.cx, m.cy)
				m.mergeFrom = nil
			}
		case "esc":
			m.mergeFrom = nil
		case "w":
			m.game.StartNextWave()
		case "s":
			m.game.StopWave()
		case "p":
			m.game.TogglePause()
		}
	}
	return m, nil
}

// ---- lipgloss styles ----
var (
	laneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	cursorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	mergeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("94"))
	enemyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	spawnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	uiBorder     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(34).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)

	towerStyle = map[defs.TowerType]lipgloss.Style{
		defs.TowerPeashooter: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		defs.TowerSunflower:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		defs.TowerWallnut:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		defs.TowerMortar:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
	towerGlyph = map[defs.TowerType]string{
		defs.TowerPeashooter: "P",
		defs.TowerSunflower:  "S",
		defs.TowerWallnut:    "W",
		defs.TowerMortar:     "M",
	}
)

func (m model) View() string {
	g := m.game

	// враги по клеткам; столбец GridCols - зона появления справа от поля
	enemies := make(map[grid.Coord]int)
	for _, id := range g.ECS.EnemyIDs() {
		enemy := g.ECS.Enemies[id]
		pos := g.ECS.Positions[id]
		if pos.X < 0 {
			continue
		}
		col := min(int(pos.X/config.CellSize), config.GridCols)
		enemies[grid.Coord{X: col, Y: enemy.Lane}]++
	}

	rows := make([]string, config.GridRows)
	for y := 0; y < config.GridRows; y++ {
		var b strings.Builder
		for x := 0; x < config.GridCols; x++ {
			b.WriteString(m.cell(x, y, enemies[grid.Coord{X: x, Y: y}]))
		}
		if n := enemies[grid.Coord{X: config.GridCols, Y: y}]; n > 0 {
			b.WriteString(enemyStyle.Render(fmt.Sprintf(" <%d", n)))
		} else {
			b.WriteString(spawnStyle.Render(" <."))
		}
		rows[y] = b.String()
	}
	field := uiBorder.Render(strings.Join(rows, "\n"))

	info := []string{
		titleStyle.Render(waveTitle(g)),
		fmt.Sprintf("Gold %d  Lives %d  Score %d", g.Gold(), g.Lives(), g.Score()),
		fmt.Sprintf("Enemies %d  Pending %d", len(g.ECS.Enemies), g.WaveSystem.PendingSpawns()),
		"",
	}
	affordable := g.TowerSystem.AffordableTypes(g.Gold())
	for i, t := range defs.AllTowerTypes {
		line := fmt.Sprintf("%d %s %d", i+1, defs.Info(t).Name, g.TowerSystem.Stats(t, defs.LevelBasic).Cost)
		switch {
		case t == g.Selected():
			line = towerStyle[t].Render("> " + line)
		case !slices.Contains(affordable, t):
			line = spawnStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		info = append(info, line)
	}
	if _, tower, ok := g.TowerAt(m.cx, m.cy); ok {
		info = append(info, "", fmt.Sprintf("%s %s", defs.Info(tower.Type).Name, tower.Level),
			fmt.Sprintf("sell %d  upgrade %d", g.TowerSystem.SellValue(tower),
				g.TowerSystem.UpgradeCost(tower.Type, tower.Level)))
	}
	info = append(info, "")
	start := max(len(m.log.lines)-maxLogs, 0)
	info = append(info, m.log.lines[start:]...)
	sidebar := sidebarStyle.Render(strings.Join(info, "\n"))

	footer := "arrows move | 1-4 type | enter place | x sell | m merge | u upgrade | w wave | s stop | p pause | q quit"
	switch {
	case g.Over():
		footer = "GAME OVER | q quit"
	case g.Paused():
		footer = "PAUSED | " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, field, sidebar), footer)
}

func waveTitle(g *app.Game) string {
	if g.VictoryWave() > 0 {
		return fmt.Sprintf("Wave %d/%d  (%s)", g.Wave(), g.VictoryWave(), g.WavePhase())
	}
	return fmt.Sprintf("Wave %d  (%s)", g.Wave(), g.WavePhase())
}

// cell renders one grid cell as four columns: tower glyph, level, enemy count.
func (m model) cell(x, y, enemyCount int) string {
	text := laneStyle.Render(" .  ")
	if _, tower, ok := m.game.TowerAt(x, y); ok {
		text = towerStyle[tower.Type].Render(fmt.Sprintf(" %s%d", towerGlyph[tower.Type], tower.Level))
		if enemyCount > 0 {
			text += enemyStyle.Render("e")
		} else {
			text += " "
		}
	} else if enemyCount > 0 {
		text = enemyStyle.Render(fmt.Sprintf(" e%-2d", enemyCount))
	}
	switch {
	case m.mergeFrom != nil && m.mergeFrom.X == x && m.mergeFrom.Y == y:
		return mergeStyle.Render(text)
	case x == m.cx && y == m.cy:
		return cursorStyle.Render(text)
	}
	return text
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
