package console

import (
	"fmt"
	"io"
	"strings"
)

// ParseAnswer interprets a yes/no reply. Matching ignores case and accepts
// "y", "yes", "n" and "no". ok is false for anything else.
func ParseAnswer(reply string) (yes bool, ok bool) {
	switch strings.ToLower(TrimLine(reply)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// Confirm asks question until the user gives a recognizable answer. Each
// unrecognized reply is reported on errOut. A read error, including io.EOF,
// is returned with yes set to false.
func Confirm(c Console, errOut io.Writer, question string) (bool, error) {
	for {
		reply, err := c.ReadLine(question)
		if err != nil {
			return false, err
		}
		if yes, ok := ParseAnswer(reply); ok {
			return yes, nil
		}
		fmt.Fprintln(errOut, "Unknown input")
	}
}
