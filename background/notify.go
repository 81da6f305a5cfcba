package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/relief-api/utils"
)

// NotificationLanguageCode is a mapping between the language code of notification
// payloads and i18n language code
var NotificationLanguageCode = map[string]string{
	"zh-Hant": "zh_tw",
	"en":      "en",
}

// LocalizedMessage returns headings and contents in a map where its keys are languages.
// templateData, when given, returns the data the content of a language is rendered with.
func LocalizedMessage(msgType string, templateData func(lang string) map[string]interface{}) (map[string]string, map[string]string, error) {
	headings := map[string]string{}
	contents := map[string]string{}

	for key, lang := range NotificationLanguageCode {
		loc := utils.NewLocalizer(lang)

		heading, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("notification.%s.heading", msgType),
		})
		if err != nil {
			return nil, nil, err
		}
		headings[key] = heading

		var data map[string]interface{}
		if templateData != nil {
			data = templateData(lang)
		}

		content, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    fmt.Sprintf("notification.%s.content", msgType),
			TemplateData: data,
		})
		if err != nil {
			return nil, nil, err
		}
		contents[key] = content
	}

	return headings, contents, nil
}
