package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
)

const monitorRefresh = 100 * time.Millisecond

// regionRow is one line of the region table
type regionRow struct {
	name       string
	ships      int
	warping    int
	transiting int
	routed     int
}

// monitorFrame is a copy of world state taken under the update lock
type monitorFrame struct {
	frame   int64
	simTime time.Duration
	regions []regionRow
}

// monitor renders region occupancy and status metrics to the terminal
type monitor struct {
	world  *engine.World
	screen tcell.Screen
	latest atomic.Pointer[monitorFrame]
}

// newMonitor wraps screen, or opens the terminal when screen is nil
func newMonitor(world *engine.World, screen tcell.Screen) (*monitor, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("monitor screen: %w", err)
		}
	}
	return &monitor{world: world, screen: screen}, nil
}

// capture runs on the scheduler goroutine after each tick
func (m *monitor) capture(frame int64) {
	w := m.world
	rows := make([]regionRow, 0, w.Components.SolarSystem.CountEntities())
	index := make(map[core.Entity]int)
	for _, r := range w.Components.SolarSystem.GetAllEntities() {
		sys, _ := w.Components.SolarSystem.GetComponent(r)
		index[r] = len(rows)
		rows = append(rows, regionRow{name: sys.Name})
	}

	for _, ship := range w.Components.Thruster.GetAllEntities() {
		coord, ok := w.Components.Galaxy.GetComponent(ship)
		if !ok {
			continue
		}
		i, ok := index[coord.Region]
		if !ok {
			continue
		}
		rows[i].ships++
		if mv, ok := w.Components.Movement.GetComponent(ship); ok {
			if mv.IsWarp() {
				rows[i].warping++
			} else if mv.IsGateTransit() {
				rows[i].transiting++
			}
		}
		if w.Components.TravelRoute.HasEntity(ship) {
			rows[i].routed++
		}
	}

	m.latest.Store(&monitorFrame{
		frame:   frame,
		simTime: w.Resources.Time.SimTime,
		regions: rows,
	})
}

// run owns the terminal until ctx ends or the user quits, which calls cancel
func (m *monitor) run(ctx context.Context, cancel context.CancelFunc) error {
	if err := m.screen.Init(); err != nil {
		return fmt.Errorf("monitor init: %w", err)
	}
	core.SetCrashHook(m.screen.Fini)
	defer func() {
		core.SetCrashHook(nil)
		m.screen.Fini()
	}()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		for {
			ev := m.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(monitorRefresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return nil
				}
			case *tcell.EventResize:
				m.screen.Sync()
			}
		case <-ticker.C:
			m.draw()
		}
	}
}

func (m *monitor) draw() {
	s := m.screen
	s.Clear()

	header := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	label := tcell.StyleDefault.Foreground(tcell.ColorGray)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	y := 0
	if f := m.latest.Load(); f != nil {
		labels := m.world.Resources.Status.Labels
		drawText(s, 0, y, header, fmt.Sprintf("gatewarp  frame %d  sim %s  galaxy %s  busiest %s",
			f.frame, f.simTime.Truncate(time.Second),
			labels.Get("galaxy.phase").Value(), labels.Get("region.busiest").Value()))
		y += 2
		drawText(s, 0, y, label, fmt.Sprintf("%-12s %6s %6s %8s %6s", "region", "ships", "warp", "transit", "routed"))
		y++
		for _, r := range f.regions {
			drawText(s, 0, y, value, fmt.Sprintf("%-12s %6d %6d %8d %6d", r.name, r.ships, r.warping, r.transiting, r.routed))
			y++
		}
	} else {
		drawText(s, 0, y, header, "gatewarp  waiting for first tick")
		y++
	}

	y++
	_, height := s.Size()
	for _, metric := range m.world.Resources.Status.Snapshot() {
		if y >= height-1 {
			break
		}
		drawText(s, 0, y, label, fmt.Sprintf("%-28s", metric.Key))
		drawText(s, 29, y, value, metric.Value)
		y++
	}
	if height > 0 {
		drawText(s, 0, height-1, label, "q / Esc to quit")
	}

	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
