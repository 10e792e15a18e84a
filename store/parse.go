package store

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/storykit/core/errors"
)

// changePagePayload is the untyped wire shape of a change_page payload.
type changePagePayload struct {
	ID    string `mapstructure:"id"`
	Index int    `mapstructure:"index"`
}

// ParseAction maps an external action name and untyped payload onto the
// typed action union. It is the boundary used by tooling that reads actions
// from scripts or flags; code inside the process constructs actions
// directly. Unknown names and malformed payloads return coded errors.
func ParseAction(name string, payload any) (Action, error) {
	switch name {
	case "toggle_access":
		return boolAction(name, payload, func(on bool) Action { return ToggleAccess{On: on} })
	case "toggle_ad":
		return boolAction(name, payload, func(on bool) Action { return ToggleAd{On: on} })
	case "toggle_bookend":
		return boolAction(name, payload, func(on bool) Action { return ToggleBookend{On: on} })
	case "toggle_info_dialog":
		return boolAction(name, payload, func(on bool) Action { return ToggleInfoDialog{On: on} })
	case "toggle_story_has_audio":
		return boolAction(name, payload, func(on bool) Action { return ToggleStoryHasAudio{On: on} })
	case "toggle_landscape":
		return boolAction(name, payload, func(on bool) Action { return ToggleLandscape{On: on} })
	case "toggle_muted":
		return boolAction(name, payload, func(on bool) Action { return ToggleMuted{On: on} })
	case "toggle_page_has_audio":
		return boolAction(name, payload, func(on bool) Action { return TogglePageHasAudio{On: on} })
	case "toggle_paused":
		return boolAction(name, payload, func(on bool) Action { return TogglePaused{On: on} })
	case "toggle_rtl":
		return boolAction(name, payload, func(on bool) Action { return ToggleRTL{On: on} })
	case "toggle_sidebar":
		return boolAction(name, payload, func(on bool) Action { return ToggleSidebar{On: on} })
	case "toggle_has_sidebar":
		return boolAction(name, payload, func(on bool) Action { return ToggleHasSidebar{On: on} })
	case "toggle_supported_browser":
		return boolAction(name, payload, func(on bool) Action { return ToggleSupportedBrowser{On: on} })
	case "toggle_share_menu":
		return boolAction(name, payload, func(on bool) Action { return ToggleShareMenu{On: on} })

	case "toggle_ui":
		return parseToggleUI(payload)

	case "set_consent_id":
		if payload == nil {
			return SetConsentID{}, nil
		}
		id, ok := payload.(string)
		if !ok {
			return nil, errors.InvalidInput(fmt.Sprintf("set_consent_id payload must be a string or null, got %T", payload))
		}
		return SetConsentID{ID: &id}, nil

	case "change_page":
		var cp changePagePayload
		if err := mapstructure.Decode(payload, &cp); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "change_page payload must be {id, index}")
		}
		return ChangePage{ID: cp.ID, Index: cp.Index}, nil

	default:
		return nil, errors.UnknownAction(name)
	}
}

func boolAction(name string, payload any, build func(bool) Action) (Action, error) {
	on, ok := payload.(bool)
	if !ok {
		return nil, errors.InvalidInput(fmt.Sprintf("%s payload must be a boolean, got %T", name, payload))
	}
	return build(on), nil
}

func parseToggleUI(payload any) (Action, error) {
	switch v := payload.(type) {
	case int:
		ui := UIType(v)
		if ui < UIMobile || ui > UIScroll {
			return nil, errors.InvalidInput(fmt.Sprintf("toggle_ui payload out of range: %d", v))
		}
		return ToggleUI{UI: ui}, nil
	case string:
		ui, ok := ParseUIType(v)
		if !ok {
			return nil, errors.InvalidInput(fmt.Sprintf("toggle_ui payload must be mobile, desktop, or scroll, got %q", v))
		}
		return ToggleUI{UI: ui}, nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("toggle_ui payload must be an int or string, got %T", payload))
	}
}
