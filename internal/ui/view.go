package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/menu"
	"github.com/atomicstack/nestedmenu/internal/ui/command"
)

const (
	toggleLabel   = " ≡ Menu "
	minPanelInner = 10
	maxPanelInner = 36
	rowPadding    = 4 // leading space, gap, chevron, trailing space
	statusSep     = " › "
)

const (
	tlc = "╭"
	trc = "╮"
	blc = "╰"
	brc = "╯"
	hz  = "─"
	vt  = "│"
)

// View renders the toggle button, the open panels and the footer, then hands
// the frame to the surface so element positions can be measured.
func (m *Model) View() string {
	size := m.viewport()
	m.frame = map[host.Handle]element{}

	layers := make([]layer, 0, 4)
	layers = append(layers, m.renderToggleButton(size))
	if m.ctrl.IsOpen() {
		layers = append(layers, m.renderPanels(size)...)
	}
	layers = append(layers, m.renderFooter(size))
	return m.surface.Scan(compose(size, layers))
}

func (m *Model) buttonHandle() host.Handle {
	return host.Handle(m.prefix + "toggle")
}

func (m *Model) menuHandle(owner *menu.Item) host.Handle {
	if owner == nil {
		return host.Handle(m.prefix + "menu/")
	}
	return host.Handle(m.prefix + "menu:" + owner.ID)
}

func (m *Model) itemHandle(item menu.Item) host.Handle {
	return host.Handle(m.prefix + "item:" + item.ID)
}

// buttonOrigin puts the button on the top row, or just above the footer when
// the menu opens upwards. It sits at the leading edge unless the menu opens
// towards the leading side.
func (m *Model) buttonOrigin(size geometry.Size, width int) (int, int) {
	placement := m.ctrl.Placement()
	y := 0
	if placement == geometry.PlacementTop {
		y = size.Height - 2
		if y < 0 {
			y = 0
		}
	}
	leading := placement != geometry.PlacementStart
	if m.surface.Direction() == geometry.RTL {
		leading = !leading
	}
	if leading {
		return 0, y
	}
	x := size.Width - width
	if x < 0 {
		x = 0
	}
	return x, y
}

func (m *Model) renderToggleButton(size geometry.Size) layer {
	props := m.ctrl.ToggleButtonProps()
	h := m.buttonHandle()
	props.Ref(h)
	m.frame[h] = element{parent: host.Root, handlers: props.Handlers}

	style := m.styles.ToggleButton
	if m.ctrl.IsOpen() {
		style = m.styles.ToggleButtonActive
	}
	text := toggleLabel
	if style != nil {
		text = style.Render(text)
	}
	x, y := m.buttonOrigin(size, lipgloss.Width(toggleLabel))
	return layer{x: x, y: y, lines: []string{m.surface.Mark(h, text)}}
}

// renderPanels draws the root panel and then one panel per open submenu.
// A submenu whose anchor has not been measured yet is skipped for this frame.
func (m *Model) renderPanels(size geometry.Size) []layer {
	if _, ok := m.surface.Rect(m.buttonHandle()); !ok {
		return nil
	}
	screen := geometry.Rect{Width: size.Width, Height: size.Height}
	items := m.ctrl.Items()

	layers := make([]layer, 0, 1+len(m.ctrl.CurrentPath()))
	panel := panelSize(items, size)
	rect := geometry.Clamp(m.ctrl.MenuOffsetStyles(nil).Resolve(screen, panel), size)
	layers = append(layers, m.renderPanel(nil, items, rect, host.Root, nil))

	path := m.ctrl.CurrentPath()
	level := items
	for i, id := range path {
		item, ok := findItem(level, id)
		if !ok || !item.HasSubMenu() {
			break
		}
		anchor, ok := m.surface.Rect(m.itemHandle(item))
		if !ok {
			break
		}
		panel := panelSize(item.SubMenu, size)
		rect := geometry.Clamp(m.ctrl.MenuOffsetStyles(&item).Resolve(anchor, panel), size)
		layers = append(layers, m.renderPanel(&item, item.SubMenu, rect, m.itemHandle(item), path[:i+1]))
		level = item.SubMenu
	}
	return layers
}

func (m *Model) renderPanel(owner *menu.Item, items []menu.Item, rect geometry.Rect, parent host.Handle, trail []string) layer {
	panelHandle := m.menuHandle(owner)
	props := m.ctrl.MenuProps(owner)
	props.Ref(panelHandle)
	m.frame[panelHandle] = element{
		parent:   parent,
		handlers: props.Handlers.With(m.ctrl.CloseTrigger(host.PointerLeave, owner)),
	}

	inner := rect.Width - 2
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, m.border(tlc+strings.Repeat(hz, inner)+trc))
	for _, item := range items {
		ih := m.itemHandle(item)
		ip := m.ctrl.ItemProps(item)
		ip.Ref(ih)
		handlers := ip.Handlers.With(m.ctrl.OpenTrigger(host.PointerEnter, item))
		if item.HasSubMenu() {
			handlers = handlers.With(m.ctrl.ToggleTrigger(host.Click, &item))
		} else {
			handlers = handlers.With(m.activateTrigger(item, trail))
		}
		m.frame[ih] = element{parent: panelHandle, handlers: handlers}
		lines = append(lines, m.surface.Mark(ih, m.border(vt)+m.renderItemRow(item, ih, inner)+m.border(vt)))
	}
	lines = append(lines, m.border(blc+strings.Repeat(hz, inner)+brc))

	block := m.surface.Mark(panelHandle, strings.Join(lines, "\n"))
	return layer{x: rect.X, y: rect.Y, lines: strings.Split(block, "\n")}
}

func (m *Model) renderItemRow(item menu.Item, h host.Handle, inner int) string {
	labelWidth := inner - rowPadding
	if labelWidth < 1 {
		labelWidth = 1
	}
	label := item.DisplayLabel()
	if lipgloss.Width(label) > labelWidth {
		label = truncate.StringWithTail(label, uint(labelWidth), "…")
	}
	pad := strings.Repeat(" ", max(labelWidth-lipgloss.Width(label), 0))

	chevron := " "
	rtl := m.surface.Direction() == geometry.RTL
	if item.HasSubMenu() {
		chevron = "›"
		if rtl {
			chevron = "‹"
		}
	}
	var row string
	if rtl {
		row = " " + chevron + " " + pad + label + " "
	} else {
		row = " " + label + pad + " " + chevron + " "
	}

	style := m.styles.Item
	switch {
	case m.ctrl.IsSubMenuOpen(item):
		style = m.styles.ItemOpen
	case m.isHovered(h):
		style = m.styles.ItemHover
	}
	if style == nil {
		return row
	}
	return style.Render(row)
}

func (m *Model) border(s string) string {
	if m.styles.PanelBorder == nil {
		return s
	}
	return m.styles.PanelBorder.Render(s)
}

func (m *Model) renderFooter(size geometry.Size) layer {
	help := m.keys.Quit.Help()
	text := help.Key + " " + help.Desc
	if m.status != "" {
		text = m.status + "  " + text
	}
	text = truncateText(text, size.Width)
	style := m.styles.Footer
	if m.reloadErr != "" && m.styles.Error != nil {
		style = m.styles.Error
	}
	if style != nil {
		text = style.Render(text)
	}
	return layer{x: 0, y: size.Height - 1, lines: []string{text}}
}

// panelSize fits the widest label, within the viewport.
func panelSize(items []menu.Item, viewport geometry.Size) geometry.Size {
	inner := minPanelInner
	for _, item := range items {
		if w := lipgloss.Width(item.DisplayLabel()) + rowPadding; w > inner {
			inner = w
		}
	}
	if inner > maxPanelInner {
		inner = maxPanelInner
	}
	if viewport.Width > 0 && inner+2 > viewport.Width {
		inner = max(viewport.Width-2, 1)
	}
	return geometry.Size{Width: inner + 2, Height: len(items) + 2}
}

// needsLayout reports whether an open panel is waiting for its anchor to be
// measured.
func (m *Model) needsLayout() bool {
	if !m.ctrl.IsOpen() {
		return false
	}
	if _, ok := m.surface.Rect(m.buttonHandle()); !ok {
		return true
	}
	level := m.ctrl.Items()
	for _, id := range m.ctrl.CurrentPath() {
		item, ok := findItem(level, id)
		if !ok || !item.HasSubMenu() {
			return false
		}
		if _, ok := m.surface.Rect(m.itemHandle(item)); !ok {
			return true
		}
		level = item.SubMenu
	}
	return false
}

func findItem(items []menu.Item, id string) (menu.Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return menu.Item{}, false
}

func activationStatus(roots []menu.Item, activated command.Activated) string {
	labels := make([]string, 0, len(activated.Path)+1)
	level := roots
	for _, id := range activated.Path {
		item, ok := findItem(level, id)
		if !ok {
			labels = append(labels, id)
			continue
		}
		labels = append(labels, item.DisplayLabel())
		level = item.SubMenu
	}
	labels = append(labels, activated.Item.DisplayLabel())
	return "Activated " + strings.Join(labels, statusSep)
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
