package solver

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultTargetBase is the walkthrough page template; %s is the level number.
const DefaultTargetBase = "https://dazepuzzle.com/brain-test-level-%s/"

// ErrTargetBase is returned for a walkthrough template that does not hold
// exactly one %s placeholder.
var ErrTargetBase = errors.New("target URL template must contain exactly one %s")

// ValidateTargetBase checks that base interpolates the level once and has no
// other formatting verbs. A literal percent sign must be written as %%.
func ValidateTargetBase(base string) error {
	rest := strings.ReplaceAll(base, "%%", "")
	if strings.Count(rest, "%") != 1 || strings.Count(rest, "%s") != 1 {
		return fmt.Errorf("%w: %q", ErrTargetBase, base)
	}
	return nil
}

// TargetURL builds the walkthrough URL for level. The level is interpolated
// verbatim; base must pass ValidateTargetBase.
func TargetURL(base, level string) string {
	return fmt.Sprintf(base, level)
}

// ProxyURL builds the relay call for target against the relay at relayBase.
func ProxyURL(relayBase, target string) string {
	return strings.TrimRight(relayBase, "/") + "/api/proxy?url=" + url.QueryEscape(target)
}
