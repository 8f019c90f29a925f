// internal/journal/journal.go
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/event"
)

// Kind - вид записи журнала.
type Kind string

const (
	KindEvent   Kind = "event"
	KindCommand Kind = "command"
	KindMark    Kind = "mark"
)

// Entry - одна строка журнала (JSON lines).
type Entry struct {
	Session string          `json:"session"`
	Seq     int             `json:"seq"`
	TimeMs  float64         `json:"time_ms"`
	Kind    Kind            `json:"kind"`
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Recorder пишет события и применённые команды одной партии в w.
// Первая ошибка записи сохраняется, последующие записи пропускаются.
type Recorder struct {
	game    *app.Game
	enc     *json.Encoder
	session uuid.UUID
	seq     int
	err     error
}

// NewRecorder subscribes the recorder to every event of g.
func NewRecorder(w io.Writer, g *app.Game) *Recorder {
	r := &Recorder{
		game:    g,
		enc:     json.NewEncoder(w),
		session: uuid.New(),
	}
	g.EventDispatcher.SubscribeAll(r)
	return r
}

// Session returns the ID stamped on every entry of this recorder.
func (r *Recorder) Session() uuid.UUID { return r.session }

// Err returns the first write error, if any.
func (r *Recorder) Err() error { return r.err }

// OnEvent реализует интерфейс event.Listener.
func (r *Recorder) OnEvent(e event.Event) {
	r.write(KindEvent, string(e.Type), e.Data)
}

// RecordCommand appends a command entry without applying it.
func (r *Recorder) RecordCommand(cmd app.Command) {
	r.write(KindCommand, string(cmd.Type), cmd)
}

// Mark appends a bare time stamp, so a replay reaches the same end time even
// when nothing happened in the last ticks.
func (r *Recorder) Mark(label string) {
	r.write(KindMark, label, nil)
}

// Apply records cmd and applies it to the game. Malformed commands are not
// recorded.
func (r *Recorder) Apply(cmd app.Command) error {
	if err := r.game.Apply(cmd); err != nil {
		return err
	}
	r.RecordCommand(cmd)
	return nil
}

func (r *Recorder) write(kind Kind, typ string, data any) {
	if r.err != nil {
		return
	}
	entry := Entry{
		Session: r.session.String(),
		Seq:     r.seq,
		TimeMs:  r.game.Time(),
		Kind:    kind,
		Type:    typ,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			r.err = fmt.Errorf("journal: encode %s %s: %w", kind, typ, err)
			return
		}
		entry.Data = raw
	}
	if err := r.enc.Encode(entry); err != nil {
		r.err = fmt.Errorf("journal: write entry %d: %w", r.seq, err)
		return
	}
	r.seq++
}

// Read parses a JSON lines journal.
func Read(rd io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("journal: line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("journal: read: %w", err)
	}
	return entries, nil
}

// Commands extracts the recorded commands in order, with the game time at
// which each was applied.
func Commands(entries []Entry) ([]TimedCommand, error) {
	var out []TimedCommand
	for _, e := range entries {
		if e.Kind != KindCommand {
			continue
		}
		var cmd app.Command
		if err := json.Unmarshal(e.Data, &cmd); err != nil {
			return nil, fmt.Errorf("journal: command %d: %w", e.Seq, err)
		}
		out = append(out, TimedCommand{TimeMs: e.TimeMs, Command: cmd})
	}
	return out, nil
}

// TimedCommand - команда с моментом применения.
type TimedCommand struct {
	TimeMs  float64
	Command app.Command
}

// ErrTickMismatch is returned when a recorded command time cannot be reached
// with the given tick length.
var ErrTickMismatch = errors.New("journal: command time not reachable with tick length")

// Replay feeds the recorded commands into g, ticking by tickMs between them,
// and finally advances g to the time of the last entry. g must be created
// with the same settings as the recorded game.
func Replay(g *app.Game, entries []Entry, tickMs float64) error {
	if tickMs <= 0 {
		return fmt.Errorf("journal: tick must be positive, got %v", tickMs)
	}
	cmds, err := Commands(entries)
	if err != nil {
		return err
	}
	for _, tc := range cmds {
		if err := advance(g, tc.TimeMs, tickMs); err != nil {
			return err
		}
		if err := g.Apply(tc.Command); err != nil {
			return fmt.Errorf("journal: replay %s at %vms: %w", tc.Command.Type, tc.TimeMs, err)
		}
	}
	if len(entries) > 0 {
		return advance(g, entries[len(entries)-1].TimeMs, tickMs)
	}
	return nil
}

func advance(g *app.Game, until, tickMs float64) error {
	for g.Time() < until {
		if g.Paused() || g.Over() {
			return fmt.Errorf("%w: stuck at %vms, want %vms", ErrTickMismatch, g.Time(), until)
		}
		g.Tick(tickMs)
	}
	if g.Time() != until {
		return fmt.Errorf("%w: overshot to %vms, want %vms", ErrTickMismatch, g.Time(), until)
	}
	return nil
}
