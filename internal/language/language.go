package language

import (
	"errors"
	"fmt"
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// UndeterminedCode is the code given to languages outside the CLDR data.
const UndeterminedCode = "und"

// ErrUnknownLanguage is returned when a key cannot be resolved.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is a resolved playlist language.
type Language struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	NativeName string `json:"native_name"`
}

type undEntry struct {
	name   string
	native string
}

var undetermined = map[string]undEntry{
	"kachin":   {"Kachin", "ကချင်ဘာသာ"},
	"rohingya": {"Rohingya", "Ruáingga"},
	"karenni":  {"Karenni", "Karenni"},
	"karen":    {"Karen", "ကညီကျိ"},
}

var englishNames = display.English.Languages()

// Resolve maps a configured language key (a tag such as "en" or "som", an
// English name such as "Spanish", or one of the built-in undetermined
// languages) to a Language.
func Resolve(key string) (Language, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return Language{}, fmt.Errorf("%w: empty key", ErrUnknownLanguage)
	}

	if e, ok := undetermined[strings.ToLower(trimmed)]; ok {
		return Language{Name: e.name, Code: UndeterminedCode, NativeName: e.native}, nil
	}
	if tag, err := xlanguage.Parse(trimmed); err == nil {
		if lang, ok := fromTag(tag); ok {
			return lang, nil
		}
		if base, _ := tag.Base(); base.String() == UndeterminedCode {
			return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, key)
		}
	}
	if tag, ok := byEnglishName(trimmed); ok {
		if lang, ok := fromTag(tag); ok {
			return lang, nil
		}
	}
	return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, key)
}

// MustResolve is Resolve for keys known to be valid.
func MustResolve(key string) Language {
	lang, err := Resolve(key)
	if err != nil {
		panic(err)
	}
	return lang
}

func fromTag(tag xlanguage.Tag) (Language, bool) {
	base, conf := tag.Base()
	if conf == xlanguage.No || base.String() == UndeterminedCode {
		return Language{}, false
	}
	name := englishNames.Name(base)
	if name == "" {
		return Language{}, false
	}
	native := display.Self.Name(base)
	if native == "" {
		native = name
	}
	return Language{Name: name, Code: base.String(), NativeName: native}, true
}

func byEnglishName(name string) (xlanguage.Tag, bool) {
	for _, tag := range display.Supported.Tags() {
		base, _ := tag.Base()
		if base.String() == UndeterminedCode {
			continue
		}
		english := englishNames.Name(base)
		if english != "" && strings.EqualFold(english, name) {
			return xlanguage.Make(base.String()), true
		}
	}
	return xlanguage.Und, false
}

// IsUndetermined reports whether lang came from the built-in table.
func (l Language) IsUndetermined() bool {
	return l.Code == UndeterminedCode
}
