package ide

import (
	"testing"

	"github.com/stretchr/testify/require"

	sh "github.com/kristoff-it/superhtml-core"
)

func hasCompletion(comps []Completion, label string) bool {
	for _, c := range comps {
		if c.Label == label {
			return true
		}
	}
	return false
}

func TestFindNodeAtOffsetOpenTag(t *testing.T) {
	a := sh.Parse([]byte(`<div id="a">text</div>`), sh.LangHTML)
	div := a.Nodes[0].FirstChild
	require.NotZero(t, div, "expected a div child of root")
	require.Equal(t, div, FindNodeAtOffset(a, 2))
}

func TestFindNodeAtOffsetInsideTextReturnsTextNode(t *testing.T) {
	a := sh.Parse([]byte(`<div>text</div>`), sh.LangHTML)
	idx := FindNodeAtOffset(a, 7) // inside "text"
	require.NotZero(t, idx)
	require.Equal(t, sh.KindText, a.Nodes[idx].Kind)
}

func TestFindNodeAtOffsetPastEndOfDocument(t *testing.T) {
	src := `<div>x</div>`
	a := sh.Parse([]byte(src), sh.LangHTML)
	require.Zero(t, FindNodeAtOffset(a, uint32(len(src))))
}

func TestDescriptionForElementName(t *testing.T) {
	a := sh.Parse([]byte(`<div>x</div>`), sh.LangHTML)
	desc, ok := Description(a, 2)
	require.True(t, ok)
	require.NotEmpty(t, desc)
}

func TestDescriptionForAttributeName(t *testing.T) {
	a := sh.Parse([]byte(`<div id="a">x</div>`), sh.LangHTML)
	desc, ok := Description(a, 6) // inside "id"
	require.True(t, ok)
	require.NotEmpty(t, desc)
}

func TestCompletionsTagNameInsideParent(t *testing.T) {
	a := sh.Parse([]byte(`<select><`), sh.LangHTML)
	comps := Completions(a, uint32(len("<select><")))
	require.True(t, hasCompletion(comps, "option"), "expected option among completions inside an unclosed select")
}

func TestCompletionsTagNameScopedToUnclosedAncestor(t *testing.T) {
	// The trailing '<' hasn't tokenized into anything yet; completions
	// must still be scoped to the unclosed <ul>, not the document root.
	src := "<ul><li>a</li><"
	a := sh.Parse([]byte(src), sh.LangHTML)
	comps := Completions(a, uint32(len(src)))
	require.True(t, hasCompletion(comps, "li"), "expected li among completions for a still-open <ul>")
}

func TestCompletionsAttrNameExcludesPresent(t *testing.T) {
	src := `<div id="a" `
	a := sh.Parse([]byte(src), sh.LangHTML)
	comps := Completions(a, uint32(len(src)))
	require.False(t, hasCompletion(comps, "id"), "id is already present on this tag and must not be offered again")
}

func TestCompletionsAttrValueCORS(t *testing.T) {
	src := `<link crossorigin="`
	a := sh.Parse([]byte(src), sh.LangHTML)
	comps := Completions(a, uint32(len(src)))
	require.True(t, hasCompletion(comps, "anonymous"))
}

func TestCompletionsAttrValueLang(t *testing.T) {
	src := `<html lang="e`
	a := sh.Parse([]byte(src), sh.LangHTML)
	comps := Completions(a, uint32(len(src)))
	require.True(t, hasCompletion(comps, "en"))
}
