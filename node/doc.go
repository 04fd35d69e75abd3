// Package node is the host-boundary adapter for visual pipeline hosts.
//
// It re-expresses a host's parameter-widget declarations as plain structs
// (name, default, min, max, step), applies slider-boundary clamping, maps a
// gender selector to the topology presets, and converts the rendered pixmap
// into the float32 BHWC tensor layout image-conditioning hosts expect.
//
// The rendering core never depends on this package; hosts with different
// widget or tensor conventions can replace it wholesale.
package node
