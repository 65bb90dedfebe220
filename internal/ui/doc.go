// Package ui contains the Bubble Tea program that renders a nested menu in
// the terminal. The menu's behaviour lives in internal/nested; this package
// only draws what the controller reports and feeds pointer input back to it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, resizes, mouse input, activations).
//   - Mouse messages are turned into an element path: the innermost marked
//     element under the pointer followed by its logical ancestors. A submenu
//     panel's ancestor is the item that opened it, so hovering a submenu
//     counts as hovering its item.
//   - Enter and leave handlers fire per element when the hovered set
//     changes. Clicks bubble from the innermost element outwards; unless a
//     handler stops propagation the click is then dispatched to the
//     surface's global listeners, which is how outside-click dismissal sees
//     it.
//   - With a backend.Watcher, Init waits for menu file reloads. Each event is
//     applied through the data dispatcher and the wait is re-armed; the
//     footer reports the outcome.
//
// Rendering:
//   - View rebuilds the element table, calling each element's Ref with its
//     handle so the controller's registries stay current.
//   - Panels are positioned with the controller's offsets against the
//     previous frame's measurements and composited line by line. A panel
//     whose anchor has not been measured yet is skipped and a short layout
//     tick is scheduled.
//   - Leaf activations are reported through internal/ui/command.
package ui
