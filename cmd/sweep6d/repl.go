package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kohutek/sweep6d/internal/config"
	"github.com/kohutek/sweep6d/internal/sweep"
)

// nearGroup is the highlight group the near command claims for itself.
const nearGroup = 1 << 7

const usage = `commands
  new [preset]          arm a new game from a preset
  probe x y z u v w     reveal a cell (the first probe generates the board)
  probe! x y z u v w    reveal a cell even if it is marked
  mark x y z u v w      toggle a mark
  hl g on|off x...w     set or clear highlight group g (0-7) on a cell
  near on|off x...w     highlight a cell's neighbors (uses group 7)
  board                 redraw the board
  state                 show preset, seed and progress
  help                  this text
  quit                  leave

glyphs
  ?  hidden        x  marked          ~  highlighted
  .  no mines near 1-9  mines near    +  more than nine, -  below zero
  *  mine (exploded, or revealed once the game is over)
  !  wrong mark, shown once the game is over`

var axisNames = [sweep.NumAxes]string{"x", "y", "z", "u", "v", "w"}

// session drives one interactive game. The board is created lazily by the
// first probe so that unseeded games get their safe opening cell.
type session struct {
	presets []config.Preset
	preset  config.Preset
	params  sweep.GameParams
	seed    *uint64
	board   *sweep.Board
	started time.Time
}

func newSession(presets []config.Preset, name string) (*session, error) {
	s := &session{presets: presets}
	if err := s.arm(name); err != nil {
		return nil, err
	}
	return s, nil
}

// arm selects a preset and resets the session to a fresh, not yet generated
// game.
func (s *session) arm(name string) error {
	preset, ok := config.FindPreset(s.presets, name)
	if !ok {
		names := make([]string, len(s.presets))
		for i, p := range s.presets {
			names[i] = p.Name
		}
		return fmt.Errorf("no preset %q, have: %s", name, strings.Join(names, ", "))
	}

	var seed *uint64
	if preset.Seed != "" {
		parsed, err := config.ParseSeed(preset.Seed)
		if err != nil {
			return fmt.Errorf("preset %s: %w", preset.Name, err)
		}
		seed = &parsed
	}

	s.preset = preset
	s.params = preset.Params()
	s.seed = seed
	s.board = nil
	return nil
}

func (s *session) greeting() string {
	return fmt.Sprintf("sweep6d - %s: %s. probe a cell to begin, help lists commands.",
		s.preset.Name, describeParams(s.params))
}

// exec runs one input line and returns what to print and whether to quit.
func (s *session) exec(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit":
		return "bye", true
	case "help":
		return usage, false
	}

	out, err := s.run(cmd, args)
	if err != nil {
		return "error: " + err.Error(), false
	}
	return out, false
}

func (s *session) run(cmd string, args []string) (string, error) {
	switch cmd {
	case "new":
		return s.cmdNew(args)
	case "probe":
		return s.cmdProbe(args, false)
	case "probe!":
		return s.cmdProbe(args, true)
	case "mark":
		return s.cmdMark(args)
	case "hl":
		return s.cmdHighlight(args)
	case "near":
		return s.cmdNear(args)
	case "board":
		return s.cmdBoard()
	case "state":
		return s.cmdState(), nil
	default:
		return "", fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (s *session) cmdNew(args []string) (string, error) {
	name := s.preset.Name
	if len(args) > 0 {
		name = args[0]
	}
	if err := s.arm(name); err != nil {
		return "", err
	}
	return s.greeting(), nil
}

func (s *session) cmdProbe(args []string, probeMarked bool) (string, error) {
	c, err := parseCoord(s.params.Size, args)
	if err != nil {
		return "", err
	}

	if s.board == nil {
		s.board = sweep.New(s.params, &c, s.seed)
		s.started = time.Now()
		log.WithField("seed", config.FormatSeed(s.board.Seed())).Info("board generated")
		return s.view(), nil
	}

	s.board.ProbeAt(c, probeMarked)
	return s.view(), nil
}

func (s *session) cmdMark(args []string) (string, error) {
	c, err := parseCoord(s.params.Size, args)
	if err != nil {
		return "", err
	}
	if s.board == nil {
		return "", fmt.Errorf("no board yet, probe a cell first")
	}
	s.board.MarkAt(c)
	return s.view(), nil
}

func (s *session) cmdHighlight(args []string) (string, error) {
	if len(args) != 2+sweep.NumAxes {
		return "", fmt.Errorf("usage: hl g on|off x y z u v w")
	}
	group, err := strconv.Atoi(args[0])
	if err != nil || group < 0 || group > 7 {
		return "", fmt.Errorf("highlight group must be 0..7, got %q", args[0])
	}
	enable, err := parseOnOff(args[1])
	if err != nil {
		return "", err
	}
	c, err := parseCoord(s.params.Size, args[2:])
	if err != nil {
		return "", err
	}
	if s.board == nil {
		return "", fmt.Errorf("no board yet, probe a cell first")
	}
	s.board.HighlightAt(c, 1<<group, enable)
	return s.view(), nil
}

func (s *session) cmdNear(args []string) (string, error) {
	if len(args) != 1+sweep.NumAxes {
		return "", fmt.Errorf("usage: near on|off x y z u v w")
	}
	enable, err := parseOnOff(args[0])
	if err != nil {
		return "", err
	}
	c, err := parseCoord(s.params.Size, args[1:])
	if err != nil {
		return "", err
	}
	if s.board == nil {
		return "", fmt.Errorf("no board yet, probe a cell first")
	}
	for n := range s.board.Neighbors(c) {
		s.board.HighlightAt(n, nearGroup, enable)
	}
	return s.view(), nil
}

func (s *session) cmdBoard() (string, error) {
	if s.board == nil {
		return "", fmt.Errorf("no board yet, probe a cell first")
	}
	return s.view(), nil
}

func (s *session) cmdState() string {
	if s.board == nil {
		return fmt.Sprintf("%s: %s, no board yet", s.preset.Name, describeParams(s.params))
	}
	return fmt.Sprintf("%s: %s, seed %s\n%s",
		s.preset.Name, describeParams(s.params),
		config.FormatSeed(s.board.Seed()), s.statusLine())
}

func (s *session) view() string {
	return renderBoard(s.board) + "\n" + s.statusLine()
}

func (s *session) statusLine() string {
	b := s.board
	elapsed := formatDuration(time.Since(s.started))
	switch b.State() {
	case sweep.Victory:
		return fmt.Sprintf("swept in %s (seed %s)", elapsed, config.FormatSeed(b.Seed()))
	case sweep.Loss:
		return fmt.Sprintf("boom, lost after %s (seed %s)", elapsed, config.FormatSeed(b.Seed()))
	default:
		return fmt.Sprintf("%d mines, %d marked, %d left, elapsed %s",
			b.Mines(), b.Marked(), b.Mines()-b.Marked(), elapsed)
	}
}

// parseCoord reads one integer per axis and rejects anything outside the
// board before it can reach the engine.
func parseCoord(size [sweep.NumAxes]int, args []string) (sweep.Coord, error) {
	var c sweep.Coord
	if len(args) != sweep.NumAxes {
		return c, fmt.Errorf("want %d coordinates, got %d", sweep.NumAxes, len(args))
	}
	for a, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return c, fmt.Errorf("bad coordinate %q", arg)
		}
		if v < 0 || v >= size[a] {
			return c, fmt.Errorf("%s=%d outside 0..%d", axisNames[a], v, size[a]-1)
		}
		c[a] = v
	}
	return c, nil
}

func parseOnOff(arg string) (bool, error) {
	switch arg {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("want on or off, got %q", arg)
}

func describeParams(p sweep.GameParams) string {
	var sb strings.Builder
	for a, size := range p.Size {
		if a > 0 {
			sb.WriteByte('x')
		}
		sb.WriteString(strconv.Itoa(size))
	}
	var wrapped []string
	for a, wrap := range p.Wrap {
		if wrap {
			wrapped = append(wrapped, axisNames[a])
		}
	}
	if len(wrapped) > 0 {
		fmt.Fprintf(&sb, " (wrap %s)", strings.Join(wrapped, ","))
	}
	fmt.Fprintf(&sb, ", %d mines", p.Mines)
	return sb.String()
}
