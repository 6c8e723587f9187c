package ui

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Printable keys match on Rune, everything else on Code.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

const modMask = key.ModShift | key.ModControl | key.ModAlt | key.ModMeta

// Action names shared by the toolbar and the keymap.
const (
	actionErase = "erase"
	actionClear = "clear"
	actionUndo  = "undo"
	actionRedo  = "redo"
	actionGrid  = "grid"
	actionSave  = "save"
	actionLoad  = "load"
	actionCopy  = "copy"
	actionPaste = "paste"
	actionQuit  = "quit"
)

type binding struct {
	keys   []KeyShortcut
	action string
}

var bindings = []binding{
	{[]KeyShortcut{{Rune: 'z', Modifiers: key.ModControl}}, actionUndo},
	{[]KeyShortcut{{Rune: 'y', Modifiers: key.ModControl}, {Rune: 'z', Modifiers: key.ModControl | key.ModShift}}, actionRedo},
	{[]KeyShortcut{{Rune: 'g'}}, actionGrid},
	{[]KeyShortcut{{Rune: 'e'}}, actionErase},
	{[]KeyShortcut{{Code: key.CodeDeleteForward}}, actionClear},
	{[]KeyShortcut{{Rune: 's', Modifiers: key.ModControl}}, actionSave},
	{[]KeyShortcut{{Rune: 'o', Modifiers: key.ModControl}}, actionLoad},
	{[]KeyShortcut{{Rune: 'c', Modifiers: key.ModControl}}, actionCopy},
	{[]KeyShortcut{{Rune: 'v', Modifiers: key.ModControl}}, actionPaste},
	{[]KeyShortcut{{Rune: 'q'}}, actionQuit},
}

var keymap = func() map[KeyShortcut]string {
	m := make(map[KeyShortcut]string)
	for _, b := range bindings {
		for _, k := range b.keys {
			m[k] = b.action
		}
	}
	return m
}()

// shortcutFor normalizes a key event. Drivers that report control
// characters for Ctrl+letter are mapped back to the letter.
func shortcutFor(e key.Event) KeyShortcut {
	mods := e.Modifiers & modMask
	r := e.Rune
	if r > 0 && r < 0x20 && e.Code >= key.CodeA && e.Code <= key.CodeZ {
		r = 'a' + rune(e.Code-key.CodeA)
	}
	if r >= 0x20 && r != 0x7f {
		return KeyShortcut{Rune: unicode.ToLower(r), Modifiers: mods}
	}
	return KeyShortcut{Code: e.Code, Modifiers: mods}
}

// actionFor returns the action bound to e, if any.
func actionFor(e key.Event) (string, bool) {
	a, ok := keymap[shortcutFor(e)]
	return a, ok
}

// paletteKey maps the unmodified digit keys 1-9 and 0 to palette indexes
// 0-9.
func paletteKey(e key.Event) (int, bool) {
	ks := shortcutFor(e)
	if ks.Modifiers != 0 || ks.Rune < '0' || ks.Rune > '9' {
		return 0, false
	}
	if ks.Rune == '0' {
		return 9, true
	}
	return int(ks.Rune - '1'), true
}
