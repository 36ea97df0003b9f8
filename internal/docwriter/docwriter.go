// Package docwriter turns an ordered sequence of heading and paragraph
// blocks into downloadable document artifacts. Headings nest at two levels;
// body text is a single paragraph per block, with embedded newlines rendered
// as line breaks.
package docwriter

// Block is one unit of renderer input: a heading when Level is 1 or 2, a body
// paragraph when Level is 0.
type Block struct {
	Level int
	Text  string
}
