package batch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/farzanhk9/Story-Post-Square/internal/domain"
)

// FormatPattern renders a rename template for one file. {index} substitutes
// the 1-based position in the batch, {name} the source file's stem. {index}
// accepts a zero-padded width spec like {index:03d}; doubled braces escape
// literal ones.
func FormatPattern(pattern string, index int, name string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			if i+1 < len(pattern) && pattern[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed placeholder", domain.ErrBadRenamePattern)
			}
			sub, err := expandField(pattern[i+1:i+1+end], index, name)
			if err != nil {
				return "", err
			}
			b.WriteString(sub)
			i += end + 1
		case '}':
			if i+1 < len(pattern) && pattern[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: stray '}'", domain.ErrBadRenamePattern)
		default:
			b.WriteByte(pattern[i])
		}
	}
	return b.String(), nil
}

func expandField(field string, index int, name string) (string, error) {
	key, spec, _ := strings.Cut(field, ":")
	switch key {
	case "index":
		return formatIndex(index, spec)
	case "name":
		if spec != "" && spec != "s" {
			return "", fmt.Errorf("%w: spec %q not valid for name", domain.ErrBadRenamePattern, spec)
		}
		return name, nil
	default:
		return "", fmt.Errorf("%w: unknown placeholder %q", domain.ErrBadRenamePattern, key)
	}
}

// formatIndex accepts an empty spec or the integer forms "d", "3d", "03d".
func formatIndex(index int, spec string) (string, error) {
	if spec == "" {
		return strconv.Itoa(index), nil
	}
	widthPart, ok := strings.CutSuffix(spec, "d")
	if !ok {
		return "", fmt.Errorf("%w: spec %q not valid for index", domain.ErrBadRenamePattern, spec)
	}
	if widthPart == "" {
		return strconv.Itoa(index), nil
	}
	width, err := strconv.Atoi(widthPart)
	if err != nil || width < 0 {
		return "", fmt.Errorf("%w: spec %q not valid for index", domain.ErrBadRenamePattern, spec)
	}
	if strings.HasPrefix(widthPart, "0") {
		return fmt.Sprintf("%0*d", width, index), nil
	}
	return fmt.Sprintf("%*d", width, index), nil
}
