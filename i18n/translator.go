package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "duplicate_name":
			return "名前が重複しています"
		case "unresolved_reference":
			return "参照先のスキーマが見つかりません"
		case "illegal_field_combination":
			return "フィールドの組み合わせが不正です"
		case "illegal_mutation":
			return "参照スキーマは変更できません"
		}
	default: // "en"
		switch code {
		case "duplicate_name":
			return "duplicate name"
		case "unresolved_reference":
			return "unresolved schema reference"
		case "illegal_field_combination":
			return "illegal field combination"
		case "illegal_mutation":
			return "referenced schema cannot be modified"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
