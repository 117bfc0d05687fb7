// Package taxi implements Shadow Taxi: drive a taxi up a scrolling road, carry
// passengers to their flags for a fee and survive the traffic.
//
// The package is pure logic. The platform feeds one core.InputFrame per tick
// into Step and draws the result with Render.
package taxi

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-taxi/internal/config"
	"github.com/vovakirdan/tui-taxi/internal/core"
	"github.com/vovakirdan/tui-taxi/internal/registry"
)

// Mode selects the win condition of a run.
type Mode int

const (
	ModeLevel   Mode = iota // Win by reaching the earnings target
	ModeEndless             // Drive until the frames run out
)

// Game implements the Shadow Taxi game logic.
type Game struct {
	mode      Mode
	preloaded bool
	cfg       config.TaxiConfig
	objs      config.GameObjects
	weather   []config.WeatherWindow
	loadErr   error

	runtime    core.RuntimeConfig
	rules      CollisionRules
	difficulty *config.DifficultyManager
	rng        *SimpleRNG
	held       *core.HeldInput

	taxi         *Taxi // Controlled taxi, or the replacement awaiting the driver
	wreck        *Taxi // Destroyed taxi still holding the trip history
	driver       *Driver
	respawn      RespawnState
	replacements int

	passengers Pool[Passenger]
	cars       Pool[Car]
	enemies    Pool[Car]
	fireballs  Pool[Fireball]
	coins      Pool[Pickup]
	powers     Pool[Pickup]
	effects    Pool[Effect]

	frame     int
	scroll    int // Total distance the world has scrolled
	coinTicks int
	raining   bool

	paused     bool
	gameOver   bool
	won        bool
	scoreSaved bool
	saveErr    error

	player   string
	recorder core.ScoreRecorder
	runID    string

	events []core.Event
}

// Settings applied to games created through the registry.
var (
	configPath       string
	objectsPath      string
	weatherPath      string
	difficultyPreset config.DifficultyPreset
	playerName       = "player"
	scoreRecorder    core.ScoreRecorder
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetObjectsPath sets the game-objects CSV file. Empty uses the built-in level.
func SetObjectsPath(path string) {
	objectsPath = path
}

// SetWeatherPath sets the weather CSV file. Empty uses the built-in schedule.
func SetWeatherPath(path string) {
	weatherPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetPlayerName sets the player name recorded with scores.
func SetPlayerName(name string) {
	if name != "" {
		playerName = name
	}
}

// SetScoreRecorder sets where finished runs are written.
func SetScoreRecorder(r core.ScoreRecorder) {
	scoreRecorder = r
}

// New creates a game that loads its configuration on Reset.
func New(mode Mode) *Game {
	return &Game{
		mode:     mode,
		player:   playerName,
		recorder: scoreRecorder,
	}
}

// NewWithConfig creates a game from an already loaded configuration.
func NewWithConfig(mode Mode, cfg config.TaxiConfig, objs config.GameObjects, weather []config.WeatherWindow) *Game {
	g := New(mode)
	g.preloaded = true
	g.cfg = cfg
	g.objs = objs
	g.weather = weather
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "taxi_endless"
	}
	return "taxi"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Shadow Taxi (Endless)"
	}
	return "Shadow Taxi"
}

// SetPlayer sets the player name for this game only.
func (g *Game) SetPlayer(name string) {
	if name != "" {
		g.player = name
	}
}

// SetScoreRecorder sets the score sink for this game only.
func (g *Game) SetScoreRecorder(r core.ScoreRecorder) {
	g.recorder = r
}

// LoadErr returns the error hit while loading files, if defaults were used instead.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// SaveErr returns the error of the score write, if it failed.
func (g *Game) SaveErr() error {
	return g.saveErr
}

func (g *Game) load() {
	g.loadErr = nil

	cfg, err := config.LoadTaxi(configPath)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultTaxiConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTaxiPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	objs, err := config.LoadGameObjects(objectsPath)
	if err != nil {
		g.loadErr = err
		objs, _ = config.LoadGameObjects("")
	}
	g.objs = objs

	weather, err := config.LoadWeather(weatherPath)
	if err != nil {
		g.loadErr = err
		weather, _ = config.LoadWeather("")
	}
	g.weather = weather
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.preloaded {
		g.load()
	}

	g.rules = RulesFromConfig(g.cfg.Collision)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = NewSimpleRNG(runtime.Seed)
	g.held = core.NewHeldInput(g.cfg.Input.HoldTicks)

	g.passengers.Clear()
	g.cars.Clear()
	g.enemies.Clear()
	g.fireballs.Clear()
	g.coins.Clear()
	g.powers.Clear()
	g.effects.Clear()

	for _, def := range g.objs.Passengers {
		g.passengers.Add(newPassenger(def, g.cfg.Passenger))
	}
	for _, pos := range g.objs.Coins {
		g.coins.Add(newPickup(KindCoin, core.Pt(pos.X, pos.Y), g.cfg.Coin))
	}
	for _, pos := range g.objs.Powers {
		g.powers.Add(newPickup(KindInvinciblePower, core.Pt(pos.X, pos.Y), g.cfg.Power))
	}

	start := core.Pt(g.objs.Taxi.X, g.objs.Taxi.Y)
	g.taxi = newTaxi(start, g.cfg.Taxi, NewTripLog(len(g.objs.Passengers)))
	g.wreck = nil
	g.driver = &Driver{
		Body:   newBody(KindDriver, start, g.cfg.Driver.Radius, g.cfg.Driver.Health, 0),
		InTaxi: true,
	}
	g.respawn = RespawnActive
	g.replacements = 0

	g.frame = 0
	g.scroll = 0
	g.coinTicks = 0
	g.raining = false
	g.paused = false
	g.gameOver = false
	g.won = false
	g.scoreSaved = false
	g.saveErr = nil
	g.runID = uuid.NewString()
	g.events = nil
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	g.held.Update(in)
	if g.coinTicks > 0 {
		g.coinTicks--
	}

	g.updateWeather()
	g.updatePlayer()
	g.updatePassengers()
	g.updateTraffic()
	g.sweepCollisions()
	g.updateRespawn()
	g.spawnTraffic()
	g.prune()

	switch {
	case g.IsLevelCompleted():
		g.emit(core.EventLevelComplete, g.taxi.Pos, g.Earnings())
	case g.IsGameOver():
		g.emit(core.EventGameOver, g.driver.Pos, g.Earnings())
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// Target returns the earnings needed to win, or 0 in endless mode.
func (g *Game) Target() float64 {
	if g.mode == ModeEndless {
		return 0
	}
	return g.cfg.Gameplay.Target
}

// Earnings returns the total of fee minus penalty over completed trips.
func (g *Game) Earnings() float64 {
	if log := g.tripLog(); log != nil {
		return log.Earnings()
	}
	return 0
}

// tripLog returns the live trip history, wherever it currently sits.
func (g *Game) tripLog() *TripLog {
	if g.taxi != nil && g.taxi.Trips != nil {
		return g.taxi.Trips
	}
	if g.wreck != nil {
		return g.wreck.Trips
	}
	return nil
}

// IsLevelCompleted reports whether earnings reached the target.
// The first time it is true the score is written.
func (g *Game) IsLevelCompleted() bool {
	target := g.Target()
	if target <= 0 || g.Earnings() < target {
		return false
	}
	g.won = true
	g.gameOver = true
	g.saveScore()
	return true
}

// IsGameOver reports whether the run is lost: the frames ran out, the driver
// died or the driver walked off the top of the road.
// The first time it is true the score is written.
func (g *Game) IsGameOver() bool {
	over := g.frame >= g.cfg.Gameplay.MaxFrames ||
		!g.driver.Alive() ||
		(!g.driver.InTaxi && g.driver.Pos.Y < 0)
	if !over {
		return false
	}
	g.gameOver = true
	g.saveScore()
	return true
}

// saveScore writes the run to the recorder exactly once per run.
func (g *Game) saveScore() {
	if g.scoreSaved {
		return
	}
	g.scoreSaved = true
	if g.recorder == nil {
		return
	}
	g.saveErr = g.recorder.RecordScore(core.ScoreRecord{
		GameID:   g.ID(),
		RunID:    g.runID,
		Player:   g.player,
		Earnings: g.Earnings(),
		Won:      g.won,
		Frames:   g.frame,
		At:       time.Now(),
	})
}

func (g *Game) emit(kind core.EventKind, at core.Point, amount float64) {
	g.events = append(g.events, core.Event{Kind: kind, Frame: g.frame, At: at, Amount: amount})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	earnings := g.Earnings()
	return core.GameState{
		Score:    int(earnings),
		Earnings: earnings,
		Target:   g.Target(),
		Won:      g.won,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Accessors used by the HUD and tests.

func (g *Game) Taxi() *Taxi                { return g.taxi }
func (g *Game) Driver() *Driver            { return g.driver }
func (g *Game) RespawnState() RespawnState { return g.respawn }
func (g *Game) Replacements() int          { return g.replacements }
func (g *Game) Frame() int                 { return g.frame }
func (g *Game) Raining() bool              { return g.raining }
func (g *Game) CoinTicks() int             { return g.coinTicks }
func (g *Game) Config() config.TaxiConfig  { return g.cfg }

// Register the game modes with the registry
func init() {
	registry.Register("taxi", func() registry.Game {
		return New(ModeLevel)
	})
	registry.Register("taxi_endless", func() registry.Game {
		return New(ModeEndless)
	})
}
