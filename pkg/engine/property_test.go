package engine

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"pgregory.net/rapid"

	"github.com/goliatone/go-namegen/pkg/model"
)

var separators = []string{"-", "--", "---"}

func genEntry(rt *rapid.T) model.Entry {
	n := rapid.IntRange(1, 5).Draw(rt, "fields")
	entry := model.Entry{ID: "prop"}
	var tpl strings.Builder
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("K%d", i)
		switch rapid.IntRange(0, 2).Draw(rt, "kind") {
		case 0:
			entry.Fields = append(entry.Fields, model.NewDropdown(key, key, model.Option{Value: "V", Label: "V"}))
		case 1:
			entry.Fields = append(entry.Fields, model.NewText(key, key))
		default:
			entry.Fields = append(entry.Fields, model.NewCheckbox(key, key))
		}
		if i > 0 {
			tpl.WriteString(rapid.SampledFrom(separators).Draw(rt, "sep"))
		}
		tpl.WriteString("{{" + key + "}}")
	}
	entry.Template = tpl.String()
	if rapid.Bool().Draw(rt, "envGroup") {
		entry.Fields = append(entry.Fields, model.NewDropdown("ENV", "Environment", model.Option{Value: "DEV", Label: "Dev"}))
		entry.Template = "[{{ENV}}] " + entry.Template
	}
	return entry
}

func TestPropertyAllEmptyLeavesNoDebris(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		entry := genEntry(rt)
		got := RenderState(entry, nil)

		for _, field := range entry.Fields {
			if strings.Contains(got, "{{"+field.Base().Key+"}}") {
				rt.Fatalf("placeholder for %s left in %q", field.Base().Key, got)
			}
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			rt.Fatalf("dangling hyphen in %q", got)
		}
		if strings.Contains(got, "--") || strings.Contains(got, "  ") {
			rt.Fatalf("doubled separator in %q", got)
		}
	})
}

func TestPropertyRenderIsDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		entry := genEntry(rt)
		values := make(Values)
		for _, field := range entry.Fields {
			values[field.Base().Key] = rapid.StringMatching(`[A-Za-z0-9 {}-]{0,6}`).Draw(rt, "value")
		}
		first := Render(entry, values)
		if second := Render(entry, values); first != second {
			rt.Fatalf("render not deterministic: %q vs %q", first, second)
		}
	})
}

func TestPropertyCleanCollapsesSpaces(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.StringMatching(`[a-c \t\n\-\[\]]{0,20}`).Draw(rt, "input")
		once := Clean(in)
		for i := 1; i < len(once); i++ {
			if unicode.IsSpace(rune(once[i-1])) && unicode.IsSpace(rune(once[i])) {
				rt.Fatalf("Clean(%q) = %q still has whitespace runs", in, once)
			}
		}
		if once != strings.TrimSpace(once) {
			rt.Fatalf("Clean(%q) = %q not trimmed", in, once)
		}
	})
}
