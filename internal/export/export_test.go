package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headliner/internal/logger"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
	headlineerrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

func generate(t *testing.T, s settings.HeadlineSettings) Artifacts {
	t.Helper()
	a, err := Generate(s)
	require.NoError(t, err)
	return a
}

func variants() map[string]settings.HeadlineSettings {
	gradient := settings.Default().AddGradientColor("#ec4899")
	gradient.GradientEnabled = true
	gradient.GradientDirection = settings.GradientToBottom

	effects := settings.Default()
	effects.BackgroundColor = "#fef3c7"
	effects.TextShadow = true
	effects.TextOutline = true
	effects.AnimationType = settings.AnimationGlow

	highlighted := settings.Default().AddHighlight("Amazing")
	highlighted.Text = `Tom & Jerry's <b>{big}</b> day`
	highlighted.AnimationType = settings.AnimationNone

	return map[string]settings.HeadlineSettings{
		"defaults":    settings.Default(),
		"gradient":    gradient,
		"effects":     effects,
		"highlighted": highlighted,
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "headline-json.json", FormatJSON.Filename())
	assert.Equal(t, "headline-css.css", FormatCSS.Filename())
	assert.Equal(t, "headline-html.html", FormatHTML.Filename())
	assert.Equal(t, "headline-react.tsx", FormatReact.Filename())
	assert.Equal(t, "React Component", FormatReact.Label())

	f, err := ParseFormat(" CSS ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSS, f)

	_, err = ParseFormat("svg")
	assert.Error(t, err)
}

func TestArtifactsGet(t *testing.T) {
	t.Parallel()

	a := Artifacts{JSON: "j", CSS: "c", HTML: "h", React: "r"}
	for _, f := range Formats {
		assert.NotEmpty(t, a.Get(f))
	}
	assert.Empty(t, a.Get("svg"))
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	for name, s := range variants() {
		a := generate(t, s)
		back, err := ParseJSON(a.JSON)
		require.NoError(t, err, name)
		assert.Equal(t, s, back, name)
		assert.True(t, strings.HasPrefix(a.JSON, "{\n  \"text\": "), name)
	}
}

func TestCSSDefaults(t *testing.T) {
	t.Parallel()

	want := `.headline {
  font-size: 48px;
  font-family: 'Inter', sans-serif;
  font-weight: 700;
  text-align: center;
  letter-spacing: 0px;
  line-height: 1.2;
  padding: 20px;
  margin: 10px;
  color: #1f2937;
}

.headline {
  animation: fade-in 0.8s ease-in-out 0s;
}

@keyframes fade-in {
  from { opacity: 0; transform: translateY(20px); }
  to { opacity: 1; transform: translateY(0); }
}`
	assert.Equal(t, want, CSS(settings.Default()))
}

func TestCSSGradientOmitsBackgroundSize(t *testing.T) {
	t.Parallel()

	css := CSS(variants()["gradient"])
	assert.Contains(t, css, "  background: linear-gradient(to bottom, #3b82f6, #8b5cf6, #ec4899);\n")
	assert.Contains(t, css, "  background-clip: text;\n")
	assert.NotContains(t, css, "background-size")
	assert.NotContains(t, css, "\n  color: ")
}

func TestCSSAnimationBlocks(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	s.AnimationType = settings.AnimationNone
	assert.NotContains(t, CSS(s), "animation")
	assert.NotContains(t, CSS(s), "@keyframes")

	s.AnimationType = settings.AnimationBounce
	assert.Contains(t, CSS(s), "@keyframes bounce {\n}")

	s.AnimationType = settings.AnimationGlow
	assert.Contains(t, CSS(s), "  0% { text-shadow: 0 0 5px currentColor; }\n")
}

func TestCSSEscapesFontFamily(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	s.FontFamily = `Bob's \ Font`
	css := CSS(s)
	assert.Contains(t, css, `  font-family: 'Bob\'s \\ Font', sans-serif;`+"\n")

	a := generate(t, s)
	assert.Contains(t, a.React, `fontFamily: 'Bob\'s \\ Font, sans-serif',`)
}

func TestHTMLEmbedsStylesheet(t *testing.T) {
	t.Parallel()

	s := variants()["effects"]
	a := generate(t, s)
	assert.True(t, strings.HasPrefix(a.HTML, "<h1 class=\"headline\">Create Amazing Headlines</h1>\n\n<style>\n"))
	assert.True(t, strings.HasSuffix(a.HTML, "\n</style>"))
	assert.Contains(t, a.HTML, a.CSS)

	markup, err := Inspect(a.HTML)
	require.NoError(t, err)
	assert.Equal(t, s.Text, markup.Text)
	assert.Equal(t, "headline", markup.Class)
	assert.Equal(t, a.CSS, markup.CSS)
}

func TestHTMLEscapesText(t *testing.T) {
	t.Parallel()

	s := variants()["highlighted"]
	a := generate(t, s)
	assert.Contains(t, a.HTML, "Tom &amp; Jerry&#39;s &lt;b&gt;{big}&lt;/b&gt; day")

	markup, err := Inspect(a.HTML)
	require.NoError(t, err)
	assert.Equal(t, s.Text, markup.Text)
}

func TestInspectRequiresHeadline(t *testing.T) {
	t.Parallel()

	_, err := Inspect("<p>nothing here</p>")
	assert.Error(t, err)
}

func TestReactDefaults(t *testing.T) {
	t.Parallel()

	a := generate(t, settings.Default())
	assert.Contains(t, a.React, "import { motion } from 'framer-motion';")
	assert.Contains(t, a.React, "    fontSize: '48px',\n")
	assert.Contains(t, a.React, "    fontFamily: 'Inter, sans-serif',\n")
	assert.Contains(t, a.React, "    fontWeight: 700,\n")
	assert.Contains(t, a.React, "    lineHeight: 1.2,\n")
	assert.Contains(t, a.React, "    color: '#1f2937',\n  };")
	assert.Contains(t, a.React, "initial={{ opacity: 0, y: 20 }}")
	assert.Contains(t, a.React, "animate={{ opacity: 1, y: 0 }}")
	assert.Contains(t, a.React, "transition={{ duration: 0.8, delay: 0 }}")
	assert.Contains(t, a.React, "\n      Create Amazing Headlines\n")
	assert.True(t, strings.HasSuffix(a.React, "export default Headline;"))
}

func TestReactMotionOffsets(t *testing.T) {
	t.Parallel()

	cases := map[settings.AnimationType]string{
		settings.AnimationSlideUp:    "initial={{ opacity: 0, y: 50 }}",
		settings.AnimationBounce:     "initial={{ opacity: 0 }}",
		settings.AnimationTypewriter: "initial={{ opacity: 0 }}",
		settings.AnimationNone:       "initial={{ opacity: 0 }}",
	}
	for animation, want := range cases {
		s := settings.Default()
		s.AnimationType = animation
		a := generate(t, s)
		assert.Contains(t, a.React, want, animation)
	}
}

func TestReactEffects(t *testing.T) {
	t.Parallel()

	a := generate(t, variants()["effects"])
	assert.Contains(t, a.React, "backgroundColor: '#fef3c7',")
	assert.Contains(t, a.React, "textShadow: '2px 2px 4px #000000',")
	assert.Contains(t, a.React, "WebkitTextStroke: '2px #000000',")

	escaped := generate(t, variants()["highlighted"])
	assert.Contains(t, escaped.React, "Tom &amp; Jerry&#39;s &lt;b&gt;&#123;big&#125;&lt;/b&gt; day")
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	for name, s := range variants() {
		assert.Equal(t, generate(t, s), generate(t, s), name)
	}
}

func TestCheckConsistency(t *testing.T) {
	t.Parallel()

	for name, s := range variants() {
		assert.Empty(t, CheckConsistency(s, generate(t, s)), name)
	}
}

func TestCheckConsistencyDetectsDrift(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	a := generate(t, s)

	shadowed := s
	shadowed.TextShadow = true
	drift := CheckConsistency(shadowed, a)
	require.NotEmpty(t, drift)

	formats := map[Format]bool{}
	for _, inc := range drift {
		assert.Equal(t, AspectShadow, inc.Aspect)
		formats[inc.Format] = true
	}
	assert.Equal(t, map[Format]bool{FormatCSS: true, FormatHTML: true, FormatReact: true}, formats)

	a.CSS = strings.Replace(a.CSS, "  color: #1f2937;\n", "  color: #1f2937;\n  text-shadow: 1px 1px 1px red;\n", 1)
	unexpected := CheckConsistency(s, a)
	require.Len(t, unexpected, 1)
	assert.Equal(t, FormatCSS, unexpected[0].Format)
	assert.Contains(t, unexpected[0].String(), "unexpected")
}

func TestCheckConsistencyIgnoresCarriageReturns(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	s.Text = "a\r\nb </h1> {x}\rc"
	assert.Empty(t, CheckConsistency(s, generate(t, s)))
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestDelivererCopy(t *testing.T) {
	t.Parallel()

	cb := &fakeClipboard{}
	d := NewDeliverer(cb, t.TempDir(), logger.Nop())

	res := d.Copy(FormatCSS, ".headline {}")
	assert.True(t, res.OK())
	assert.Equal(t, ".headline {}", cb.text)
	assert.Equal(t, ActionCopy, res.Action)
}

func TestDelivererCopyFailureIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	d := NewDeliverer(&fakeClipboard{err: errors.New("no clipboard")}, t.TempDir(), log)
	res := d.Copy(FormatJSON, "{}")

	require.False(t, res.OK())
	var deliveryErr *headlineerrors.DeliveryError
	require.ErrorAs(t, res.Err, &deliveryErr)
	assert.Equal(t, "json", deliveryErr.Format)
	assert.Contains(t, buf.String(), "Failed to copy artifact")
}

func TestDelivererDownloadWritesExactContent(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "exports")
	d := NewDeliverer(&fakeClipboard{}, dir, nil)

	a := generate(t, settings.Default())
	for _, f := range Formats {
		res := d.Download(f, a.Get(f))
		require.True(t, res.OK(), f)
		assert.Equal(t, filepath.Join(dir, f.Filename()), res.Target)

		data, err := os.ReadFile(res.Target)
		require.NoError(t, err)
		assert.Equal(t, a.Get(f), string(data))
	}
}

func TestDelivererDownloadFailure(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	d := NewDeliverer(&fakeClipboard{}, filepath.Join(blocker, "sub"), nil)
	res := d.Download(FormatHTML, "<h1>x</h1>")
	require.False(t, res.OK())
	var deliveryErr *headlineerrors.DeliveryError
	assert.ErrorAs(t, res.Err, &deliveryErr)
}
