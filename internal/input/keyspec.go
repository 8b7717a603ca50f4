package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence as written in a config file, e.g. "<c-w>q" for
// CTRL+W followed by Q.
type Keyspec string

// specialKeys are the keys that are written as "<identifier>" in a Keyspec.
var specialKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"home":  {Key: tcell.KeyHome},
	"end":   {Key: tcell.KeyEnd},

	"c-space": {Key: tcell.KeyCtrlSpace},
}

var specialKeyIdentifiers = map[Key]string{}

func init() {
	named := make(map[string]Key, len(specialKeys))
	for identifier, key := range specialKeys {
		named[identifier] = key
	}

	// control keys <c-a> through <c-z>; some of them are the same key as a
	// named one (e.g. <c-m> and <cr>), in which case the name is preferred
	for i := 0; i < 26; i++ {
		identifier := fmt.Sprintf("c-%c", 'a'+i)
		key := Key{Key: tcell.KeyCtrlA + tcell.Key(i)}
		specialKeys[identifier] = key
		specialKeyIdentifiers[key] = identifier
	}
	for identifier, key := range named {
		specialKeyIdentifiers[key] = identifier
	}
}

// ConfigKeyspecToKeys converts a key sequence specification to the sequence of
// Keys it describes (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0)

	runes := []rune(spec)
	for pos := 0; pos < len(runes); pos++ {
		if runes[pos] == '>' {
			return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
		}
		if runes[pos] != '<' {
			result = append(result, Key{Key: tcell.KeyRune, Ch: runes[pos]})
			continue
		}

		start := pos
		pos++
		for ; pos < len(runes) && runes[pos] != '>'; pos++ {
			switch {
			case runes[pos] == '<':
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			case !unicode.IsLetter(runes[pos]) && runes[pos] != '-':
				return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", runes[pos], pos)
			}
		}
		if pos == len(runes) {
			return nil, fmt.Errorf("unclosed special context (opened at pos %d)", start)
		}

		identifier := string(runes[start+1 : pos])
		key, err := KeyIdentifierToKey(identifier)
		if err != nil {
			return nil, fmt.Errorf("error mapping identifier '<%s>' to key (%w)", identifier, err)
		}
		result = append(result, key)
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier (e.g. "c-a" or
// "space") to the appropriate key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its config
// representation.
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := specialKeyIdentifiers[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return fmt.Sprintf("<%s>", tcell.KeyNames[k.Key])
}
