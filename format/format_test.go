package format

import (
	"bytes"
	"cmp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/pairlist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleAlignsWideKeys(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := pairlist.New[string, string](strings.Compare)
	l.Add("日本", "y")
	l.Add("ab", "x")
	var out bytes.Buffer
	err := Console(&out, l, &Config{LineWidth: 40, Context: uax11.LatinContext})
	require.NoError(t, err)
	t.Logf("\n%s", out.String())
	assert.Equal(t, "0 │ ab   │ x\n1 │ 日本 │ y\n", out.String())
}

func TestConsoleCutsLongValues(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := pairlist.New[string, string](strings.Compare)
	l.Add("k", "abcdefghijklmnopqrstuvwxyz")
	var out bytes.Buffer
	require.NoError(t, Console(&out, l, &Config{LineWidth: 20}))
	line := out.String()
	t.Logf("%q", line)
	assert.True(t, strings.HasPrefix(line, "0 │ k │ abcdefgh"))
	assert.Contains(t, line, ellipsis)
	assert.NotContains(t, line, "xyz")
	//
	err := Console(&out, l, &Config{LineWidth: 8})
	assert.ErrorIs(t, err, pairlist.ErrIllegalArguments)
}

func TestFitKeepsGraphemesWhole(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	setupGraphemes()
	accented := strings.Repeat("e\u0301", 10) // e + combining acute accent
	s, w := fit(accented, 5, uax11.LatinContext)
	assert.Equal(t, strings.Repeat("e\u0301", 4)+ellipsis, s)
	assert.Equal(t, 5, w)
	s, w = fit("e\u0301e\u0301", 5, uax11.LatinContext)
	assert.Equal(t, "e\u0301e\u0301", s)
	assert.Equal(t, 2, w)
}

func TestConsoleMarksDuplicates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := pairlist.New[int, string](cmp.Compare[int])
	l.Add(5, "x")
	l.Add(5, "y")
	l.Add(7, "z")
	noColor := color.NoColor
	color.NoColor = true // as when writing to a pipe
	defer func() { color.NoColor = noColor }()
	red := color.New(color.FgRed)
	red.EnableColor()
	var out bytes.Buffer
	err := Console(&out, l, &Config{Colors: &Palette{Duplicate: red}})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0 │ 5 │ x", lines[0])
	assert.Contains(t, lines[1], "\x1b[31m5\x1b[0m")
	assert.Equal(t, "2 │ 7 │ z", lines[2])
}

func TestConsoleEmptyAndNil(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out bytes.Buffer
	l := pairlist.New[int, int](cmp.Compare[int])
	require.NoError(t, Console(&out, l, &Config{}))
	assert.Equal(t, 0, out.Len())
	assert.ErrorIs(t, Console[int, int](&out, nil, &Config{}), pairlist.ErrIllegalArguments)
	assert.ErrorIs(t, Console(nil, l, &Config{}), pairlist.ErrIllegalArguments)
	assert.ErrorIs(t, Console(&out, l, nil), pairlist.ErrIllegalArguments)
}

func TestConfigFromTerminal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	config := ConfigFromTerminal()
	assert.GreaterOrEqual(t, config.LineWidth, 10)
}

func TestHTMLRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := pairlist.New[string, string](strings.Compare)
	l.Add("2", "c")
	l.Add("1", "<b>")
	l.Add("1", "a&b")
	var out bytes.Buffer
	require.NoError(t, HTML(&out, l))
	exp := `<table class="pairlist"><tr><th>key</th><th>value</th></tr>` +
		`<tr><td>1</td><td>&lt;b&gt;</td></tr>` +
		`<tr class="dup"><td>1</td><td>a&amp;b</td></tr>` +
		`<tr><td>2</td><td>c</td></tr></table>`
	assert.Equal(t, exp, out.String())
	//
	back, err := TableFromHTML(&out, strings.Compare)
	require.NoError(t, err)
	assert.Equal(t, l.String(), back.String())
	//
	_, err = TableFromHTML(nil, strings.Compare)
	assert.ErrorIs(t, err, pairlist.ErrIllegalArguments)
	assert.ErrorIs(t, HTML[int, int](&out, nil), pairlist.ErrIllegalArguments)
}
