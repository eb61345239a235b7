package cli

import "github.com/fatih/color"

var (
	successStyle = color.New(color.FgGreen)
	errorStyle   = color.New(color.FgRed)
	boldStyle    = color.New(color.Bold)
)
