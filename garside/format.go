package garside

import (
	"strconv"
	"strings"

	"github.com/cryptobraid/braidcrypt"
)

// FormatForm renders f through a fasttemplate template restricted to the
// fields delta, factors and canonical (braid.FormatFields), used by
// cmd/braiddemo's `-format` flag to produce custom output lines.
func FormatForm(template string, f *Form) (string, error) {
	if err := braid.CheckFormat(template); err != nil {
		return "", err
	}
	factorStrs := make([]string, len(f.Factors))
	for i, p := range f.Factors {
		arr := p.AsArray()
		parts := make([]string, len(arr))
		for j, v := range arr {
			parts[j] = strconv.Itoa(v)
		}
		factorStrs[i] = "(" + strings.Join(parts, " ") + ")"
	}
	values := map[string]interface{}{
		"delta":     strconv.Itoa(f.Delta),
		"factors":   strings.Join(factorStrs, ", "),
		"canonical": f.String(),
	}
	return braid.Replace(template, values), nil
}
