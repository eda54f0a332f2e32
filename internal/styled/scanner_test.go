package styled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanContent(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantNative int
		wantCustom int
		wantCounts map[string]int
	}{
		{
			name:       "native and custom",
			content:    "const A = styled.div``\nconst B = styled.div``\nconst C = styled(Button)``\n",
			wantNative: 2,
			wantCustom: 1,
			wantCounts: map[string]int{"div": 2, "Button": 1},
		},
		{
			name:       "no matches",
			content:    "export const x = 1\n",
			wantCounts: map[string]int{},
		},
		{
			name:       "identifier directly after styled is custom",
			content:    "import styledComponents from 'x'",
			wantCustom: 1,
			wantCounts: map[string]int{"Components": 1},
		},
		{
			name:       "dot without identifier",
			content:    "styled. div",
			wantCounts: map[string]int{},
		},
		{
			name:       "paren without identifier",
			content:    "styled( Button)",
			wantCounts: map[string]int{},
		},
		{
			name:       "same name counted across kinds",
			content:    "styled.Box styled(Box)",
			wantNative: 1,
			wantCustom: 1,
			wantCounts: map[string]int{"Box": 2},
		},
		{
			name:       "several matches on one line",
			content:    "[styled.span, styled.span, styled.a]",
			wantNative: 3,
			wantCounts: map[string]int{"span": 2, "a": 1},
		},
		{
			name:       "custom without closing paren",
			content:    "styled(Link, { shouldForwardProp })",
			wantCustom: 1,
			wantCounts: map[string]int{"Link": 1},
		},
		{
			name:       "non-ascii identifier is not matched",
			content:    "styled.ñ",
			wantCounts: map[string]int{},
		},
		{
			name:       "substring of a longer word still matches",
			content:    "unstyled.div",
			wantNative: 1,
			wantCounts: map[string]int{"div": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanContent("file.tsx", []byte(tt.content))

			require.Equal(t, "file.tsx", got.Filename)
			assert.Equal(t, tt.wantNative, got.NativeCount)
			assert.Equal(t, tt.wantCustom, got.CustomCount)
			assert.Equal(t, tt.wantCounts, got.PerIdentifier)
			assert.Len(t, got.Matches, got.Total())
		})
	}
}

func TestScanContentCountsMatchIdentifierSum(t *testing.T) {
	inputs := []string{
		"",
		"styled.div styled(Foo) styledBar styled.",
		"styled.a\nstyled.b\nstyled(C)\nstyled(C)\nstyled.a",
		"styled((Nested)) styled.styled.div",
	}

	for _, input := range inputs {
		got := ScanContent("f.js", []byte(input))

		sum := 0
		for _, count := range got.PerIdentifier {
			require.GreaterOrEqual(t, count, 1)
			sum += count
		}
		require.Equal(t, got.Total(), sum, "input %q", input)
	}
}

func TestScanContentMatchDetails(t *testing.T) {
	content := []byte("import styled from 'x'\nconst A = styled.div`\n`\nconst B = styled(Button)``")

	got := ScanContent("a.ts", content)
	require.Len(t, got.Matches, 2)

	assert.Equal(t, Match{Identifier: "div", Kind: Native, Offset: 33, Text: "styled.div"}, got.Matches[0])
	assert.Equal(t, Custom, got.Matches[1].Kind)
	assert.Equal(t, "styled(Button)", got.Matches[1].Text)
}

func TestMatchPosition(t *testing.T) {
	content := []byte("a\nstyled.div")
	got := ScanContent("a.js", content)
	require.Len(t, got.Matches, 1)

	got.ResolvePositions(content)
	assert.Equal(t, 2, got.Matches[0].Line)
	assert.Equal(t, 1, got.Matches[0].Column)
}

func TestElementKindString(t *testing.T) {
	assert.Equal(t, "native", Native.String())
	assert.Equal(t, "custom", Custom.String())
}

func TestResolvePositions(t *testing.T) {
	content := []byte("styled.a\n\n  styled(B)")
	got := ScanContent("a.js", content)
	require.Len(t, got.Matches, 2)
	assert.Zero(t, got.Matches[0].Line)

	got.ResolvePositions(content)

	assert.Equal(t, 1, got.Matches[0].Line)
	assert.Equal(t, 1, got.Matches[0].Column)
	assert.Equal(t, 3, got.Matches[1].Line)
	assert.Equal(t, 3, got.Matches[1].Column)
}

func TestResolvePositionsCarriesForward(t *testing.T) {
	content := []byte("a styled.b styled(C)\r\n\tx styled.é styled.d\n\n\nÿ styled(E)")
	got := ScanContent("a.js", content)
	require.Len(t, got.Matches, 4)

	got.ResolvePositions(content)

	type pos struct{ line, col int }
	var positions []pos
	for _, m := range got.Matches {
		positions = append(positions, pos{m.Line, m.Column})
	}
	assert.Equal(t, []pos{{1, 3}, {1, 12}, {2, 13}, {5, 3}}, positions)
}
