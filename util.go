package braid

import (
	"fmt"
	"strings"
	"unsafe"

	"regexp"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// FormatFields are the variables a `-format` template (cmd/braiddemo) is
// allowed to reference, corresponding to a Form's rendered pieces.
var FormatFields = []string{"delta", "factors", "canonical"}

// getAllVars returns the names of all placeholders in a template.
func getAllVars(data string) []string {
	var values []string
	for _, v := range varRegex.FindAllStringSubmatch(data, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// CheckFormat reports an error naming any placeholder in template that is
// not one of FormatFields, before the template is ever executed against
// real data (cmd/braiddemo's `-format` flag validation).
func CheckFormat(template string) error {
	var missing []string
	for _, v := range getAllVars(template) {
		found := false
		for _, f := range FormatFields {
			if v == f {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unknown format field(s) `%v`, expected one of %v", strings.Join(missing, ","), FormatFields)
	}
	return nil
}

// unsafeToBytes converts a string to byte slice and does it with
// zero allocations.
//
// Reference - https://stackoverflow.com/questions/59209493/how-to-use-unsafe-get-a-byte-slice-from-a-string-without-memory-copy
func unsafeToBytes(data string) []byte {
	return unsafe.Slice(unsafe.StringData(data), len(data))
}
