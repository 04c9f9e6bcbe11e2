package ui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"tinyd/internal/types"
)

// ErrTerminalClosed is returned by ReadInput once the terminal has exited
var ErrTerminalClosed = errors.New("terminal closed")

// inputBuffer bounds how many key presses wait for the multiplexer
const inputBuffer = 64

// frameMsg carries a complete frame from the control loop to bubbletea
type frameMsg string

// Terminal owns the screen through a bubbletea program. It draws the frames
// it is handed and forwards key presses and resizes as raw input; it holds no
// dashboard state of its own.
type Terminal struct {
	prog  *tea.Program
	input chan types.Event
	done  chan struct{}
	once  sync.Once
}

// NewTerminal prepares a full-screen terminal. Extra options are passed to
// the bubbletea program.
func NewTerminal(opts ...tea.ProgramOption) *Terminal {
	t := &Terminal{
		input: make(chan types.Event, inputBuffer),
		done:  make(chan struct{}),
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	t.prog = tea.NewProgram(terminalModel{input: t.input, done: t.done}, opts...)
	return t
}

// Run blocks until the terminal is quit or fails. Afterwards ReadInput
// reports ErrTerminalClosed.
func (t *Terminal) Run() error {
	defer t.close()
	_, err := t.prog.Run()
	return err
}

// Quit asks the program to restore the terminal and exit
func (t *Terminal) Quit() {
	t.prog.Quit()
}

// Render replaces the frame on screen
func (t *Terminal) Render(frame string) {
	t.prog.Send(frameMsg(frame))
}

// ReadInput waits for the next key press or resize
func (t *Terminal) ReadInput(ctx context.Context) (types.Event, error) {
	select {
	case ev := <-t.input:
		return ev, nil
	case <-t.done:
		return types.Event{}, ErrTerminalClosed
	case <-ctx.Done():
		return types.Event{}, ctx.Err()
	}
}

func (t *Terminal) close() {
	t.once.Do(func() { close(t.done) })
}

type terminalModel struct {
	frame string
	input chan<- types.Event
	done  <-chan struct{}
}

func (m terminalModel) Init() tea.Cmd {
	return nil
}

func (m terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
	case tea.KeyMsg:
		m.push(types.InputEvent(types.Key(msg.String())))
	case tea.WindowSizeMsg:
		m.push(types.ResizeEvent(msg.Width, msg.Height))
	}
	return m, nil
}

func (m terminalModel) View() string {
	return m.frame
}

func (m terminalModel) push(ev types.Event) {
	select {
	case m.input <- ev:
	case <-m.done:
	}
}
