package cssast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyleSheet_SimpleStyleRule(t *testing.T) {
	rules, err := ParseStyleSheet(`.a { margin-top: 1px; color: red; }`)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	sr := rules[0].(*StyleRule)
	assert.Equal(t, SelectorList{".a"}, sr.Selectors)
	require.Len(t, sr.Declarations.Declarations, 2)
	assert.Equal(t, MarginTop, sr.Declarations.Declarations[0].ID)
	assert.Equal(t, Length(1, "px"), sr.Declarations.Declarations[0].Value)
	assert.Equal(t, Color, sr.Declarations.Declarations[1].ID)
}

func TestParseStyleSheet_FourSidedShorthand(t *testing.T) {
	rules, err := ParseStyleSheet(`.a { margin: 1px 2px 3px 4px; }`)
	require.NoError(t, err)
	sr := rules[0].(*StyleRule)
	require.Len(t, sr.Declarations.Declarations, 1)
	assert.Equal(t, Rect{Top: Length(1, "px"), Right: Length(2, "px"), Bottom: Length(3, "px"), Left: Length(4, "px")},
		sr.Declarations.Declarations[0].Value)
}

func TestParseStyleSheet_ImportantDeclaration(t *testing.T) {
	rules, err := ParseStyleSheet(`.a { color: red !important; }`)
	require.NoError(t, err)
	sr := rules[0].(*StyleRule)
	assert.Empty(t, sr.Declarations.Declarations)
	require.Len(t, sr.Declarations.ImportantDeclarations, 1)
	assert.Equal(t, Color, sr.Declarations.ImportantDeclarations[0].ID)
}

func TestParseStyleSheet_VarReferenceIsUnparsed(t *testing.T) {
	rules, err := ParseStyleSheet(`.a { margin-top: var(--x); }`)
	require.NoError(t, err)
	sr := rules[0].(*StyleRule)
	require.Len(t, sr.Declarations.Declarations, 1)
	assert.True(t, sr.Declarations.Declarations[0].Unparsed)
	assert.Equal(t, MarginTop, sr.Declarations.Declarations[0].ID)
}

func TestParseStyleSheet_MediaNesting(t *testing.T) {
	rules, err := ParseStyleSheet(`@media (min-width: 100px) { .a { color: red; } }`)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	media := rules[0].(*MediaRule)
	assert.Equal(t, "(min-width: 100px)", media.Query)
	require.Len(t, media.Rules, 1)
}

func TestParseStyleSheet_Keyframes(t *testing.T) {
	rules, err := ParseStyleSheet(`@keyframes slide { 0% { margin-top: 1px; } 100% { margin-top: 2px; } }`)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	kf := rules[0].(*KeyframesRule)
	assert.Equal(t, "slide", kf.Name)
	require.Len(t, kf.Keyframes, 2)
}

func TestParseStyleSheet_LabColorFunction(t *testing.T) {
	rules, err := ParseStyleSheet(`.a { color: lab(50% 40 59.5); }`)
	require.NoError(t, err)
	sr := rules[0].(*StyleRule)
	cv := sr.Declarations.Declarations[0].Value.(ColorValue)
	assert.Equal(t, ColorLab, cv.Kind)
}

func TestParseStyleSheet_GradientDoublePositionStop(t *testing.T) {
	rules, err := ParseStyleSheet(`.a { background-image: linear-gradient(red 10% 20%, blue 50%); }`)
	require.NoError(t, err)
	sr := rules[0].(*StyleRule)
	require.Len(t, sr.Declarations.Declarations, 1)

	grad := sr.Declarations.Declarations[0].Value.(Gradient)
	assert.Equal(t, "linear-gradient", grad.Func)
	require.Len(t, grad.Stops, 2)
	assert.Equal(t, GradientStop{Color: "red", Positions: []string{"10%", "20%"}}, grad.Stops[0])
	assert.Equal(t, GradientStop{Color: "blue", Positions: []string{"50%"}}, grad.Stops[1])
	assert.True(t, grad.HasDoublePositionStop())
}

func TestParseStyleSheet_GradientWithNestedFunctionStopIsNotSplitOnInnerCommas(t *testing.T) {
	rules, err := ParseStyleSheet(`.a { background-image: linear-gradient(rgba(0, 0, 0, .5), blue); }`)
	require.NoError(t, err)
	sr := rules[0].(*StyleRule)
	grad := sr.Declarations.Declarations[0].Value.(Gradient)
	require.Len(t, grad.Stops, 2)
	assert.Equal(t, "rgba(0, 0, 0, .5)", grad.Stops[0].Color)
	assert.Equal(t, "blue", grad.Stops[1].Color)
}

func TestParseStyleSheet_UnrecognizedPropertyPassesThroughVerbatim(t *testing.T) {
	rules, err := ParseStyleSheet(`.a { display: block; z-index: 1; }`)
	require.NoError(t, err)
	sr := rules[0].(*StyleRule)
	require.Len(t, sr.Declarations.Declarations, 2)

	first := sr.Declarations.Declarations[0]
	assert.Equal(t, PropertyUnknown, first.ID)
	assert.True(t, first.Unparsed)
	assert.Equal(t, "display", first.Name)
	assert.Equal(t, "block", first.Raw)

	second := sr.Declarations.Declarations[1]
	assert.Equal(t, PropertyUnknown, second.ID)
	assert.Equal(t, "z-index", second.Name)
	assert.Equal(t, "1", second.Raw)
}
