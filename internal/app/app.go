package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/nestedmenu/internal/backend"
	"github.com/atomicstack/nestedmenu/internal/format/table"
	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/host/termhost"
	"github.com/atomicstack/nestedmenu/internal/logging/events"
	"github.com/atomicstack/nestedmenu/internal/menu"
	"github.com/atomicstack/nestedmenu/internal/metrics"
	"github.com/atomicstack/nestedmenu/internal/nested"
	"github.com/atomicstack/nestedmenu/internal/ui"
)

// DirectionAuto derives the text direction from the locale environment.
const DirectionAuto = "auto"

// Config describes user-provided application options.
type Config struct {
	ItemsPath   string
	Placement   geometry.Placement
	Direction   string
	OpenPath    []string
	StartOpen   bool
	Width       int
	Height      int
	MetricsAddr string
	Watch       bool
	List        bool
}

// Setup is everything Run needs before the program starts.
type Setup struct {
	Items     []menu.Item
	OpenPath  []string
	Direction geometry.Direction
	Placement geometry.Placement
}

// Prepare loads the menu tree and resolves the initial path and direction.
func Prepare(cfg Config, lookupEnv func(string) string) (Setup, error) {
	items := menu.DefaultItems()
	if cfg.ItemsPath != "" {
		loaded, err := menu.LoadFile(cfg.ItemsPath)
		if err != nil {
			return Setup{}, err
		}
		items = loaded
	}
	index, err := menu.BuildIndex(items)
	if err != nil {
		return Setup{}, err
	}
	openPath, err := index.Resolve(cfg.OpenPath)
	if err != nil {
		return Setup{}, fmt.Errorf("resolve open path: %w", err)
	}
	placement, err := geometry.ParsePlacement(string(cfg.Placement))
	if err != nil {
		return Setup{}, err
	}
	dir, err := ResolveDirection(cfg.Direction, lookupEnv)
	if err != nil {
		return Setup{}, err
	}
	return Setup{Items: items, OpenPath: openPath, Direction: dir, Placement: placement}, nil
}

// ResolveDirection maps "ltr", "rtl" or "auto" to a direction.
func ResolveDirection(value string, lookupEnv func(string) string) (geometry.Direction, error) {
	if value == "" || value == DirectionAuto {
		if lookupEnv == nil {
			return geometry.LTR, nil
		}
		return host.DirectionFromEnv(lookupEnv), nil
	}
	return geometry.ParseDirection(value)
}

// Run bootstraps and executes the Bubble Tea program, serving metrics next
// to it when an address is configured.
func Run(cfg Config) error {
	setup, err := Prepare(cfg, os.Getenv)
	if err != nil {
		return err
	}

	surface := termhost.New(setup.Direction)
	defer surface.Close()

	var (
		rec metrics.Recorder = metrics.Nop{}
		reg *prometheus.Registry
	)
	if cfg.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		rec = metrics.NewPrometheus(reg)
	}

	ctrl := nested.New(surface, nested.Config{
		Items:           setup.Items,
		IsOpen:          cfg.StartOpen,
		DefaultOpenPath: setup.OpenPath,
		Placement:       setup.Placement,
		Recorder:        rec,
	})
	defer ctrl.Close()

	var watcher *backend.Watcher
	if cfg.Watch && cfg.ItemsPath != "" {
		watcher = backend.NewWatcher(cfg.ItemsPath, backend.DefaultInterval)
		defer func() {
			watcher.Stop()
			watcher.Wait()
		}()
	}

	model := ui.NewModel(ctrl, surface, ui.Options{Width: cfg.Width, Height: cfg.Height, Watcher: watcher})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		program.Quit()
		return nil
	})
	if reg != nil {
		g.Go(func() error {
			return metrics.Serve(gCtx, cfg.MetricsAddr, reg)
		})
	}

	err = g.Wait()
	events.App.Exit(err)
	return err
}

// List writes the menu tree as an aligned table, one row per item in
// depth-first order.
func List(cfg Config, w io.Writer) error {
	setup, err := Prepare(cfg, nil)
	if err != nil {
		return err
	}
	index, err := menu.BuildIndex(setup.Items)
	if err != nil {
		return err
	}
	rows := [][]string{{"LABEL", "ID", "ITEMS"}}
	index.Walk(func(item menu.Item, depth int) {
		count := "-"
		if item.HasSubMenu() {
			count = strconv.Itoa(len(item.SubMenu))
		}
		rows = append(rows, []string{strings.Repeat("  ", depth) + item.DisplayLabel(), item.ID, count})
	})
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight})
	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
