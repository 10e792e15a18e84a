// Package embedmode resolves the embed mode a story is presented in from the
// host page's URL fragment. The mode selects which preset of capability
// overrides is applied to the state store at construction.
package embedmode

import (
	"net/url"
	"strconv"

	"github.com/storykit/core/logging"
)

// Mode identifies an embed mode variant.
type Mode int

const (
	// ModeDefault is a standalone story with all capabilities enabled.
	ModeDefault Mode = iota
	// ModeNameTBD is the partner-surface embed. The product name is still
	// pending, the numeric wire value is stable.
	ModeNameTBD
	// ModeNoSharing disables sharing UIs only.
	ModeNoSharing
)

// fragmentParam is the query-style parameter carrying the mode inside the
// URL fragment, e.g. "#embedMode=2&origin=...".
const fragmentParam = "embedMode"

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNameTBD:
		return "name-tbd"
	case ModeNoSharing:
		return "no-sharing"
	default:
		return "default"
	}
}

// Valid reports whether m is a member of the closed mode set.
func (m Mode) Valid() bool {
	return m >= ModeDefault && m <= ModeNoSharing
}

// Parse extracts the embed mode from a URL fragment. The fragment may carry a
// leading "#". Missing, malformed, or out-of-range values fall back to
// ModeDefault with a diagnostic log; parsing never fails.
func Parse(fragment string) Mode {
	if fragment == "" {
		return ModeDefault
	}
	if fragment[0] == '#' {
		fragment = fragment[1:]
	}

	params, err := url.ParseQuery(fragment)
	if err != nil {
		logging.NewLogger("embedmode").WithField("fragment", fragment).
			Debugf("unparseable URL fragment: %v", err)
		return ModeDefault
	}

	raw := params.Get(fragmentParam)
	if raw == "" {
		return ModeDefault
	}

	n, err := strconv.Atoi(raw)
	if err != nil || !Mode(n).Valid() {
		logging.NewLogger("embedmode").WithField(fragmentParam, raw).
			Error("unknown embed mode value, falling back to default")
		return ModeDefault
	}

	return Mode(n)
}

// ParseName resolves a mode from its canonical name. Used by tooling that
// takes the mode as a flag rather than a URL fragment.
func ParseName(name string) (Mode, bool) {
	switch name {
	case "", "default":
		return ModeDefault, true
	case "name-tbd":
		return ModeNameTBD, true
	case "no-sharing":
		return ModeNoSharing, true
	default:
		return ModeDefault, false
	}
}
