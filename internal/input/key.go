package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press as the input trees understand it.
// Runes are identified by Ch (with Key set to tcell.KeyRune), everything else
// by Key alone.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// ToDebugString returns a verbose description of the key for logging.
func (k Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}

// KeyFromTcellEvent converts a tcell.EventKey to a Key.
// Modifiers are dropped, as the control keys tcell reports already carry them.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}
