package core

// Color is a cell foreground color. The empty string means the terminal
// default; otherwise it holds a hex value such as "#ff5050", which both the
// terminal renderer (lipgloss) and the PNG exporter (gg) understand.
type Color string

// ColorDefault leaves the cell in the terminal's default foreground.
const ColorDefault Color = ""
