package errs

import (
	"fmt"
	"strings"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize flattens line breaks so values coming from user input cannot forge extra log lines.
func sanitize(s string) string {
	return lineBreaks.Replace(s)
}

func sanitizeS(v any) string {
	return sanitize(fmt.Sprintf("%s", v))
}

func sanitizeV(v any) string {
	return sanitize(fmt.Sprintf("%v", v))
}
