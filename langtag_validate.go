package superhtml

import "github.com/kristoff-it/superhtml-core/langtag"

// validateLangTag checks value as a BCP 47 language tag. The langtag
// package carries its own registry and grammar; this is just the seam
// that lets attributes.go stay free of an import it only needs for one
// rule kind.
func validateLangTag(value string) error {
	if err := langtag.Validate(value); err != nil {
		return err
	}
	return nil
}
