package step

import "fmt"

type Kind uint8

const (
	Compare Kind = iota + 1
	Swap
	Reset
	Highlight
	Render
	Sorted
)

var kindNames = map[Kind]string{
	Compare:   "compare",
	Swap:      "swap",
	Reset:     "reset",
	Highlight: "highlight",
	Render:    "render",
	Sorted:    "sorted",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Paced reports whether a scheduler waits one delay after emitting k.
// Color restores and the final render/sorted marks go out immediately.
func (k Kind) Paced() bool {
	switch k {
	case Compare, Swap, Highlight:
		return true
	}
	return false
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("step: unknown event kind %q", b)
}

// Event is one visual moment. Single-index kinds set J == I; Render and
// Sorted carry no indices. Consumers read values from the array themselves.
type Event struct {
	Kind Kind `json:"kind" yaml:"kind"`
	I    int  `json:"i" yaml:"i"`
	J    int  `json:"j" yaml:"j"`
}

func CompareOf(i, j int) Event { return Event{Kind: Compare, I: i, J: j} }
func SwapOf(i, j int) Event    { return Event{Kind: Swap, I: i, J: j} }
func ResetOf(i, j int) Event   { return Event{Kind: Reset, I: i, J: j} }
func HighlightOf(i int) Event  { return Event{Kind: Highlight, I: i, J: i} }
func RenderAll() Event         { return Event{Kind: Render, I: -1, J: -1} }
func SortedAll() Event         { return Event{Kind: Sorted, I: -1, J: -1} }

func (e Event) String() string {
	switch e.Kind {
	case Render, Sorted:
		return e.Kind.String()
	case Highlight:
		return fmt.Sprintf("%s(%d)", e.Kind, e.I)
	}
	return fmt.Sprintf("%s(%d,%d)", e.Kind, e.I, e.J)
}
