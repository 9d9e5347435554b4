// Package color converts between hex and rgb notations and generates random
// colors. Palette holds a fixed set of named colors.
package color
