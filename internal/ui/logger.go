package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim     = color.New(color.FgHiBlack)
	clrSubtle  = color.New(color.FgWhite)
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// Status lines go to stderr so stdout carries only the report.
var (
	logOut   io.Writer = color.Error
	logDebug           = false
)

// SetLogOutput redirects status lines, mainly for tests
func SetLogOutput(w io.Writer) {
	logOut = w
}

// SetLogLevel enables debug lines when level is "debug"
func SetLogLevel(level string) {
	logDebug = strings.EqualFold(strings.TrimSpace(level), "debug")
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	case "debug":
		if !logDebug {
			return
		}
		icon = clrDim.Sprint("·")
		styledMsg = clrDim.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Fprintf(logOut, "%s  %s  %s\n", ts, icon, styledMsg)
}

// LogDebug is LogStatus("debug", ...) with formatting
func LogDebug(format string, a ...interface{}) {
	if !logDebug {
		return
	}
	LogStatus("debug", fmt.Sprintf(format, a...))
}
