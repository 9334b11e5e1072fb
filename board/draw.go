package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessrules/position"
)

var (
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorLabel     = color.New(color.Bold)
)

// Dump draws the board in plain ASCII, White at the bottom.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if pl, ok := b.PieceAt(position.NewPos(x, y)); ok {
				sym = pl.Piece.SymbolFEN(pl.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board with coloured cells and unicode pieces.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if pl, ok := b.PieceAt(position.NewPos(x, y)); ok {
				sym = pl.Piece.SymbolUnicode(pl.Side)
			}
			cell := colorCellLight
			if (x+y)%2 == 0 {
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
