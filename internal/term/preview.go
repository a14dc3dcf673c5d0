package term

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"cave-golf/internal/app"
	"cave-golf/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Preview is an interactive terminal level browser.
type Preview struct {
	screen  tcell.Screen
	session *app.Session
	speaker *Speaker
	clock   *core.FixedStep

	waiting bool
	message string
	frames  int
}

// NewPreview takes over the terminal. Audio is optional; a nil speaker is
// silent.
func NewPreview(session *app.Session, sp *Speaker, tps int) (*Preview, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	return &Preview{screen: screen, session: session, speaker: sp, clock: core.NewFixedStep(tps)}, nil
}

// Run processes input until the user quits.
func (p *Preview) Run() {
	defer p.screen.Fini()

	ticker := time.NewTicker(p.clock.Step())
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	p.draw()
	for {
		select {
		case ev := <-events:
			if !p.handle(ev) {
				return
			}
			p.draw()
		case <-ticker.C:
			p.frames += p.clock.Ticks()
			if p.waiting {
				p.advance()
			}
			p.draw()
		}
	}
}

func (p *Preview) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ', 'n':
			p.waiting = true
			p.advance()
		case 'r':
			p.regenerate(p.session.Config().Seed)
		case 's':
			p.regenerate(time.Now().UnixNano())
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *Preview) advance() {
	moved, err := p.session.Advance()
	if err != nil {
		p.waiting = false
		p.message = err.Error()
		log.Printf("advance: %v", err)
		return
	}
	if moved {
		p.waiting = false
		p.message = ""
		p.speaker.Play(Chime())
	}
}

func (p *Preview) regenerate(seed int64) {
	if err := p.session.Regenerate(seed); err != nil {
		p.message = err.Error()
		return
	}
	p.message = ""
	p.speaker.Play(Chime())
}

func (p *Preview) draw() {
	p.screen.Clear()
	cols, rows := p.screen.Size()
	body := rows - 2
	for y, line := range Frame(p.session.Level(), cols, body) {
		for x, b := range line {
			style := tcell.StyleDefault.Foreground(rgb(b.Top)).Background(rgb(b.Bottom))
			p.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	status := p.session.Title()
	if p.waiting {
		spinner := `|/-\`
		status += fmt.Sprintf("  building next level %c", spinner[(p.frames/8)%len(spinner)])
	} else if p.session.NextReady() {
		status += "  next level ready"
	}
	if p.message != "" {
		status += "  " + p.message
	}
	p.text(0, rows-2, status, tcell.StyleDefault.Bold(true))
	p.text(0, rows-1, "space: next  r: redo  s: new seed  q: quit", tcell.StyleDefault.Dim(true))
	p.screen.Show()
}

func (p *Preview) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
