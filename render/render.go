// Package render turns a filled (or partially filled) crossword into text
// or a PNG image. It only reads the puzzle model and the assignment's
// letter grid; it never touches solver state.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/wordgrid/crossfill/crossword"
	"github.com/wordgrid/crossfill/filler"
)

const blockedRune = '█'

// Text renders the assignment as one line per grid row: letters in filled
// cells, spaces in open-but-unfilled cells, a solid block for blocked
// cells.
func Text(cw *crossword.Crossword, assignment filler.Assignment) string {
	letters := filler.LetterGrid(cw, assignment)
	var sb strings.Builder
	for row := 0; row < cw.Height; row++ {
		for col := 0; col < cw.Width; col++ {
			if !cw.Structure[row][col] {
				sb.WriteRune(blockedRune)
				continue
			}
			if letters[row][col] != 0 {
				sb.WriteRune(letters[row][col])
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

const (
	cellSize   = 100
	cellBorder = 2
)

// SavePNG writes the assignment as an image: a black canvas with a white
// square per open cell and the cell's letter centered inside it.
func SavePNG(cw *crossword.Crossword, assignment filler.Assignment, path string) error {
	letters := filler.LetterGrid(cw, assignment)

	img := image.NewRGBA(image.Rect(0, 0, cw.Width*cellSize, cw.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for row := 0; row < cw.Height; row++ {
		for col := 0; col < cw.Width; col++ {
			if !cw.Structure[row][col] {
				continue
			}
			cell := image.Rect(
				col*cellSize+cellBorder, row*cellSize+cellBorder,
				(col+1)*cellSize-cellBorder, (row+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if letters[row][col] == 0 {
				continue
			}
			s := string(letters[row][col])
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
			}
			w := d.MeasureString(s)
			d.Dot = fixed.Point26_6{
				X: fixed.I(col*cellSize+cellSize/2) - w/2,
				Y: fixed.I(row*cellSize + cellSize/2 + face.Height/2),
			}
			d.DrawString(s)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}
	return nil
}
