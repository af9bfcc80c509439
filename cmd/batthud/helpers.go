package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// colorizeLevel colors a string to match the overlay's health colors.
func colorizeLevel(level string, s string) string {
	switch level {
	case "healthy":
		return green(s)
	case "warning":
		return yellow(s)
	default:
		return red(s)
	}
}

func parseIntArg(args []string, valueName string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("invalid number of arguments")
	}

	value, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", valueName, err)
	}

	return value, nil
}
