// Package i18n renders validation violations in other languages.
//
// Every violation carries a translation key and the values its message is
// built from. A Translator looks the key up in YAML translation files and
// substitutes named placeholders of the form %{name}:
//
//	validation:
//	  required: "%{field} is verplicht"
//
// Keys are dot separated paths into the nested YAML mapping. List values,
// such as the alternatives of a location violation, are joined with the
// language's validation.words.or entry. Operator values are looked up under
// validation.operators.
//
// Dutch translations are embedded; see NewValidationTranslator. When a key has
// no translation in the requested language, English included, the violation's
// own message is used.
//
//	tr, err := i18n.NewValidationTranslator(ctx)
//	if err != nil {
//		return err
//	}
//	for _, v := range report.Violations {
//		fmt.Println(tr.Violation("nl", v))
//	}
package i18n
