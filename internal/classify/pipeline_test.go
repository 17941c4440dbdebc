package classify

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeClassifier records every sample it is asked to classify.
type fakeClassifier struct {
	tag     string
	err     error
	samples []string
}

func (f *fakeClassifier) Classify(sample string, allowed []string) (string, error) {
	f.samples = append(f.samples, sample)
	return f.tag, f.err
}

// run drives one full debounce cycle the way the UI does: fire the timer for
// gen, and only on FireClassify invoke the classifier and complete.
func run(t *testing.T, p *Pipeline, fc *fakeClassifier, gen int, orig, mod string) {
	t.Helper()
	d, sample := p.Fire(gen, orig, mod)
	if d != FireClassify {
		return
	}
	tag, err := fc.Classify(sample, ClassifierTags())
	p.Complete(gen, tag, err)
}

func TestRapidTriggersClassifyOnce(t *testing.T) {
	fc := &fakeClassifier{tag: "go"}
	p := NewPipeline(fc)

	gen1, ok := p.Trigger()
	require.True(t, ok)
	gen2, _ := p.Trigger()
	gen3, _ := p.Trigger()

	// Superseded timers fire in order; only the last one may classify.
	run(t, p, fc, gen1, "draft one", "")
	run(t, p, fc, gen2, "draft two", "")
	run(t, p, fc, gen3, "package main", "func main() {}")

	require.Len(t, fc.samples, 1)
	require.Contains(t, fc.samples[0], "package main")
	require.Contains(t, fc.samples[0], "func main() {}")
	require.Equal(t, "go", p.Detected())
	require.Equal(t, PhaseIdle, p.Phase())
}

func TestBlankSampleSkipsClassifier(t *testing.T) {
	fc := &fakeClassifier{tag: "go"}
	p := NewPipeline(fc)
	p.detected = "go"

	gen, ok := p.Trigger()
	require.True(t, ok)
	d, _ := p.Fire(gen, "", "  \n\t\n")
	require.Equal(t, FireResolved, d)
	require.Empty(t, fc.samples)
	require.Equal(t, TagPlainText, p.Detected())
}

func TestStaleCompletionDropped(t *testing.T) {
	fc := &fakeClassifier{tag: "ruby"}
	p := NewPipeline(fc)

	gen1, _ := p.Trigger()
	d, _ := p.Fire(gen1, "def greet", "")
	require.Equal(t, FireClassify, d)

	// A new trigger lands while gen1 is still classifying.
	gen2, _ := p.Trigger()
	require.False(t, p.Complete(gen1, "ruby", nil))
	require.Equal(t, TagPlainText, p.Detected())

	run(t, p, fc, gen2, "def greet\nend", "")
	require.Equal(t, "ruby", p.Detected())
}

func TestClassifierErrorFallsBackToPlainText(t *testing.T) {
	fc := &fakeClassifier{err: errors.New("boom")}
	p := NewPipeline(fc)

	gen, _ := p.Trigger()
	run(t, p, fc, gen, "some content", "")
	require.Equal(t, TagPlainText, p.Detected())
	require.Equal(t, PhaseIdle, p.Phase())
}

func TestUnknownTagFallsBackToPlainText(t *testing.T) {
	fc := &fakeClassifier{tag: "klingon"}
	p := NewPipeline(fc)

	gen, _ := p.Trigger()
	run(t, p, fc, gen, "nuqneH", "")
	require.Equal(t, TagPlainText, p.Detected())
}

func TestExplicitSelectionFreezesDetection(t *testing.T) {
	fc := &fakeClassifier{tag: "go"}
	p := NewPipeline(fc)

	gen, _ := p.Trigger()
	run(t, p, fc, gen, "package main", "")
	require.Equal(t, "go", p.Detected())

	changed, retrigger := p.SetSelection("python")
	require.True(t, changed)
	require.False(t, retrigger)
	require.Equal(t, "python", p.Effective())

	// Content changes schedule nothing while the selection is explicit.
	_, ok := p.Trigger()
	require.False(t, ok)
	require.Equal(t, "go", p.Detected())

	changed, retrigger = p.SetSelection(SelectionAuto)
	require.True(t, changed)
	require.True(t, retrigger)
	require.Equal(t, "go", p.Effective())
}

func TestSelectionCancelsInFlightRun(t *testing.T) {
	fc := &fakeClassifier{tag: "go"}
	p := NewPipeline(fc)
	p.detected = "css"

	gen, _ := p.Trigger()
	d, _ := p.Fire(gen, "package main", "")
	require.Equal(t, FireClassify, d)

	p.SetSelection("ruby")
	require.False(t, p.Complete(gen, "go", nil))
	require.Equal(t, "css", p.Detected())
}

func TestSetSelectionRejectsUnknownTag(t *testing.T) {
	p := NewPipeline(&fakeClassifier{})
	changed, _ := p.SetSelection("klingon")
	require.False(t, changed)
	require.Equal(t, SelectionAuto, p.Selection())
}

func TestSampleBounded(t *testing.T) {
	fc := &fakeClassifier{tag: "go"}
	p := NewPipeline(fc)

	big := strings.Repeat("é", SampleLimit) // 2 bytes per rune
	gen, _ := p.Trigger()
	d, sample := p.Fire(gen, big, big)
	require.Equal(t, FireClassify, d)
	require.LessOrEqual(t, len(sample), 2*SampleLimit+1)
	for _, part := range strings.SplitN(sample, "\n", 2) {
		require.True(t, strings.HasSuffix(part, "é"), "prefix must not split a rune")
	}
}
