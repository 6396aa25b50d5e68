package game

import (
	"strings"

	"github.com/Edaward/Udacity-AIND/move"
)

// ToDisplayText returns a text rendering of the board. Player current
// cells show as 1 and 2, previously visited or blocked cells as x.
func (p *Position) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < p.width; c++ {
		sb.WriteByte(byte('0' + c%10))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for r := 0; r < p.height; r++ {
		sb.WriteByte(byte('0' + r%10))
		sb.WriteString("  ")
		for c := 0; c < p.width; c++ {
			cur := move.Move{Row: r, Col: c}
			switch {
			case p.locs[Player1] == cur:
				sb.WriteString("1 ")
			case p.locs[Player2] == cur:
				sb.WriteString("2 ")
			case !p.open(r, c):
				sb.WriteString("x ")
			default:
				sb.WriteString("- ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(p.onTurn.String() + " to move\n")
	return sb.String()
}
