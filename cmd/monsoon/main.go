// Command monsoon runs the survival simulation in a terminal
// Movement: hjkl or arrow keys, blink: space, cards: 1-3, restart: r, quit: q
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/aposine/monsoon/bridge"
	"github.com/aposine/monsoon/component"
	"github.com/aposine/monsoon/core"
	"github.com/aposine/monsoon/engine"
	"github.com/aposine/monsoon/event"
	"github.com/aposine/monsoon/system"
)

const (
	tickRate = 60
	// Held keys repeat; movement stays live this long after the last press
	moveHold = 150 * time.Millisecond
)

var debug bool

var enemyGlyphs = map[component.EnemyType]rune{
	component.EnemyDrifter:  'd',
	component.EnemyLobber:   'l',
	component.EnemySpitter:  's',
	component.EnemyWaver:    'w',
	component.EnemyVolleyer: 'v',
	component.EnemyScatter:  'x',
	component.EnemyBloater:  'B',
	component.EnemyFanner:   'f',
	component.EnemySpindle:  'S',
	component.EnemyRinger:   'R',
	component.EnemyMite:     'm',
}

func main() {
	practice := flag.Bool("practice", false, "practice session, no score submit")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "simulation seed")
	submit := flag.String("submit", "", "websocket url for score and state forwarding")
	flag.BoolVar(&debug, "debug", false, "show the metrics overlay")
	flag.Parse()

	if err := run(*practice, *seed, *submit); err != nil {
		fmt.Fprintf(os.Stderr, "monsoon: %v\n", err)
		os.Exit(1)
	}
}

func run(practice bool, seed uint64, submitURL string) error {
	world := engine.NewWorld(seed, practice)
	system.RegisterAll(world)

	var sink bridge.Sink = bridge.NopSink{}
	if submitURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		ws, err := bridge.DialWebsocketSink(ctx, submitURL)
		cancel()
		if err != nil {
			return fmt.Errorf("dial %s: %w", submitURL, err)
		}
		defer ws.Close()
		sink = ws
		slog.Info("score forwarding enabled", "url", submitURL)
	}
	world.AddSystem(bridge.NewSystem(sink))

	game := engine.NewGame(world)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var (
		moveX, moveY  float64
		lastMove      time.Time
		pendingBlink  bool
		pendingChoice = engine.NoChoice
	)

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC || tev.Rune() == 'q':
					return nil
				case tev.Key() == tcell.KeyLeft || tev.Rune() == 'h':
					moveX, moveY, lastMove = -1, 0, time.Now()
				case tev.Key() == tcell.KeyRight || tev.Rune() == 'l':
					moveX, moveY, lastMove = 1, 0, time.Now()
				case tev.Key() == tcell.KeyUp || tev.Rune() == 'k':
					moveX, moveY, lastMove = 0, -1, time.Now()
				case tev.Key() == tcell.KeyDown || tev.Rune() == 'j':
					moveX, moveY, lastMove = 0, 1, time.Now()
				case tev.Rune() == ' ':
					pendingBlink = true
				case tev.Rune() >= '1' && tev.Rune() <= '3':
					pendingChoice = int(tev.Rune() - '1')
				case tev.Rune() == 'r':
					if world.Resource.Session.State == core.StateDeath {
						world.PushEvent(event.EventSessionReset, nil)
					}
				}
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			if time.Since(lastMove) > moveHold {
				moveX, moveY = 0, 0
			}

			in := engine.NewInputFrame()
			in.MoveX, in.MoveY = moveX, moveY
			in.Blink = pendingBlink
			in.CardChoice = pendingChoice
			pendingBlink = false
			pendingChoice = engine.NoChoice

			game.Step(dt, in)
			draw(screen, world)
		}
	}
}

func draw(screen tcell.Screen, world *engine.World) {
	screen.Clear()
	sw, sh := screen.Size()
	bounds := world.Resource.Config.Bounds

	// One row reserved for the status line
	scaleX := float64(sw) / bounds.Width
	scaleY := float64(sh-1) / bounds.Height
	toCell := func(x, y float64) (int, int) {
		return int(x * scaleX), 1 + int(y*scaleY)
	}

	enemyStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for _, e := range world.Component.Enemy.All() {
		en, _ := world.Component.Enemy.Get(e)
		kin, _ := world.Component.Kinetic.Get(e)
		cx, cy := toCell(kin.X, kin.Y)
		screen.SetContent(cx, cy, enemyGlyphs[en.Type], nil, enemyStyle)
	}

	projStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, e := range world.Component.Projectile.All() {
		proj, _ := world.Component.Projectile.Get(e)
		kin, _ := world.Component.Kinetic.Get(e)
		glyph := '·'
		if proj.Bounces > 0 {
			glyph = '•' // Bounced shots can hurt enemies
		}
		cx, cy := toCell(kin.X, kin.Y)
		screen.SetContent(cx, cy, glyph, nil, projStyle)
	}

	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	if pl, ok := world.Component.Player.Get(world.Resource.Player.Entity); ok {
		if kin, ok := world.Component.Kinetic.Get(world.Resource.Player.Entity); ok {
			cx, cy := toCell(kin.X, kin.Y)
			style := playerStyle
			if pl.Invincible() {
				style = style.Dim(true)
			}
			screen.SetContent(cx, cy, '@', nil, style)
		}
	}

	drawStatus(screen, world, sw)
	drawOverlay(screen, world, sw, sh)
	if debug {
		style := tcell.StyleDefault.Dim(true)
		for i, line := range world.Resource.Status.Snapshot() {
			for j, r := range line {
				screen.SetContent(j, 1+i, r, nil, style)
			}
		}
	}
	screen.Show()
}

func drawStatus(screen tcell.Screen, world *engine.World, sw int) {
	res := world.Resource
	hp := 0
	if pl, ok := world.Component.Player.Get(res.Player.Entity); ok {
		hp = pl.HP
	}
	line := fmt.Sprintf(" hp %d  score %d  humidity %.2f  %s",
		hp, res.Session.Score, res.Difficulty.Humidity, res.Session.State)
	style := tcell.StyleDefault.Reverse(true)
	for i := 0; i < sw; i++ {
		r := ' '
		if i < len(line) {
			r = rune(line[i])
		}
		screen.SetContent(i, 0, r, nil, style)
	}
}

func drawOverlay(screen tcell.Screen, world *engine.World, sw, sh int) {
	res := world.Resource
	style := tcell.StyleDefault.Bold(true)

	center := func(y int, text string) {
		x := (sw - len(text)) / 2
		for i, r := range text {
			screen.SetContent(x+i, y, r, nil, style)
		}
	}

	switch res.Session.State {
	case core.StateCountdown:
		center(sh/2, fmt.Sprintf("%d", int(res.Session.CountdownRemaining)+1))

	case core.StateCardSelection:
		choices := res.Upgrade.Selector.Choices()
		center(sh/2-1, "pick a card")
		for i, c := range choices {
			level := res.Upgrade.Ledger.Level(c)
			center(sh/2+1+i, fmt.Sprintf("[%d] %s (level %d to %d)", i+1, c, level, level+1))
		}

	case core.StateDeath:
		center(sh/2, fmt.Sprintf("dead - score %d", res.Session.Score))
		center(sh/2+2, "r to restart, q to quit")
	}
}
