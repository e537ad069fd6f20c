// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	forceQ   key.Binding
	search   key.Binding
	record   key.Binding
	settings key.Binding
	about    key.Binding
	delete   key.Binding
	copy     key.Binding
	save     key.Binding
	language key.Binding
	backup   key.Binding
	restore  key.Binding
	clear    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q")),
	forceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	search:   key.NewBinding(key.WithKeys("/")),
	record:   key.NewBinding(key.WithKeys("r")),
	settings: key.NewBinding(key.WithKeys("s")),
	about:    key.NewBinding(key.WithKeys("v")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	save:     key.NewBinding(key.WithKeys("w")),
	language: key.NewBinding(key.WithKeys("l")),
	backup:   key.NewBinding(key.WithKeys("b")),
	restore:  key.NewBinding(key.WithKeys("r")),
	clear:    key.NewBinding(key.WithKeys("x")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
