package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/utils"
)

// LocalizedStatus returns the display name of a status in the given language.
// It falls back to the wire name when no translation exists.
func LocalizedStatus(lang string, status schema.HelpStatus) string {
	loc := utils.NewLocalizer(lang)

	if name, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("status.%s", status),
	}); err == nil {
		return name
	}

	return string(status)
}
