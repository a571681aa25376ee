// Package ui implements an interactive sample preview using bubbletea's Elm architecture.
//
// The preview shows one stratified draw from the dataset as a scrollable
// list; pressing r discards it and draws a fresh sample, mirroring what the
// next refresh run would select. The TUI never touches the remote service.
//
// Keyboard navigation uses vim-style bindings (j/k, r, q) with contextual
// help displayed via charmbracelet/bubbles/help.
package ui
