package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/nodo/pkg/glyph"
)

func TestKey(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	k := &Key{Out: &out}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	got := out.String()
	for _, g := range glyph.DefaultGlyphs() {
		if !strings.Contains(got, g.Symbol) || !strings.Contains(got, g.Meaning) {
			t.Errorf("legend missing %s %s:\n%s", g.Symbol, g.Meaning, got)
		}
	}
	if strings.Index(got, "Items") > strings.Index(got, "Entries") {
		t.Errorf("items should come before entries:\n%s", got)
	}
}
