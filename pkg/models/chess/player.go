package chess

type Player int8

const (
	NoPlayer Player = 0
	P1       Player = 1
	P2       Player = -1
)

func (p Player) Other() Player {
	return -p
}

func (p Player) Valid() bool {
	return p == P1 || p == P2
}

// Number is the 1-based seat used on the wire.
func (p Player) Number() int {
	switch p {
	case P1:
		return 1
	case P2:
		return 2
	}
	return 0
}

func PlayerFromNumber(n int) (Player, bool) {
	switch n {
	case 1:
		return P1, true
	case 2:
		return P2, true
	}
	return NoPlayer, false
}

func (p Player) String() string {
	switch p {
	case P1:
		return "P1"
	case P2:
		return "P2"
	}
	return ""
}
