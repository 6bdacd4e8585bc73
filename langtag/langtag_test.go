package langtag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSimpleLanguage(t *testing.T) {
	require.Nil(t, Validate("en"))
}

func TestValidateLanguageScriptRegion(t *testing.T) {
	require.Nil(t, Validate("en-Latn-US"))
}

func TestValidateLanguageRegion(t *testing.T) {
	require.Nil(t, Validate("de-CH"))
}

func TestValidateUnknownLanguage(t *testing.T) {
	err := Validate("xx-XX-invalid")
	require.NotNil(t, err)
	require.Equal(t, ReasonUnknownLanguage, err.Reason)
	require.Equal(t, 0, err.Offset)
	require.Equal(t, 2, err.Length)
}

func TestValidateUnknownRegion(t *testing.T) {
	err := Validate("en-XX")
	require.NotNil(t, err)
	require.Equal(t, ReasonUnknownRegion, err.Reason)
	require.Equal(t, 3, err.Offset)
	require.Equal(t, 2, err.Length)
}

func TestValidateDeprecatedLanguage(t *testing.T) {
	err := Validate("iw")
	require.NotNil(t, err)
	require.Equal(t, ReasonDeprecated, err.Reason)
}

func TestValidateEmptyTag(t *testing.T) {
	err := Validate("")
	require.NotNil(t, err)
	require.Equal(t, ReasonEmptySubtag, err.Reason)
}

func TestValidateEmptySubtagInMiddle(t *testing.T) {
	err := Validate("en--US")
	require.NotNil(t, err)
	require.Equal(t, ReasonEmptySubtag, err.Reason)
}

func TestValidateGrandfatheredTag(t *testing.T) {
	require.Nil(t, Validate("i-klingon"))
}

func TestValidateDeprecatedGrandfatheredTag(t *testing.T) {
	err := Validate("i-enochian")
	require.NotNil(t, err)
	require.Equal(t, ReasonDeprecated, err.Reason)
}

func TestValidateDuplicateVariant(t *testing.T) {
	err := Validate("ca-valencia-valencia")
	require.NotNil(t, err)
	require.Equal(t, ReasonUnexpectedSubtag, err.Reason)
}

func TestValidatePrivateUseExtension(t *testing.T) {
	require.Nil(t, Validate("en-x-whatever"))
}

func TestCommonLanguageTagsExcludesDeprecated(t *testing.T) {
	for _, tag := range CommonLanguageTags() {
		require.Falsef(t, languageSubtags[tag].deprecated, "CommonLanguageTags included deprecated tag %q", tag)
	}
}

func TestCommonLanguageTagsSorted(t *testing.T) {
	tags := CommonLanguageTags()
	for i := 1; i < len(tags); i++ {
		require.Lessf(t, tags[i-1], tags[i], "CommonLanguageTags not sorted at index %d", i)
	}
}
