package classify

import (
	"strings"
	"time"
	"unicode/utf8"

	"diffpad/internal/log"
)

// Phase is the pipeline's position in its Idle, Scheduled, Classifying loop.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseScheduled
	PhaseClassifying
)

// Tunables. The debounce window coalesces classification during rapid typing;
// the sample limit bounds classifier cost on large buffers.
const (
	DebounceWindow = 300 * time.Millisecond
	SampleLimit    = 1536
)

// Pipeline owns detection state: the user's selection, the latest detected
// tag, and the generation bookkeeping that guarantees at most one
// classification per quiescent period.
//
// The pipeline holds no timer of its own. The caller starts a timer for the
// generation returned by Trigger and calls Fire when it expires; a stale
// generation means a newer trigger superseded that timer and the call is
// dropped. The same token protects Complete, so a superseding run always
// wins regardless of how slowly an older classification finishes.
type Pipeline struct {
	classifier Classifier

	selection string // SelectionAuto or a concrete catalog tag
	detected  string // always a concrete catalog tag

	phase Phase
	gen   int
}

func NewPipeline(c Classifier) *Pipeline {
	return &Pipeline{
		classifier: c,
		selection:  SelectionAuto,
		detected:   TagPlainText,
	}
}

func (p *Pipeline) Selection() string { return p.selection }
func (p *Pipeline) Detected() string  { return p.detected }
func (p *Pipeline) Phase() Phase      { return p.phase }

// Effective returns the tag applied to rendering: the explicit selection when
// one is set, otherwise the detected tag.
func (p *Pipeline) Effective() string {
	if p.selection != SelectionAuto {
		return p.selection
	}
	return p.detected
}

// Trigger records a content change. When detection is active it supersedes
// any pending schedule and returns the new generation with ok=true; the
// caller must start (or restart) the debounce timer for that generation.
// While an explicit selection is set content changes schedule nothing.
func (p *Pipeline) Trigger() (gen int, ok bool) {
	if p.selection != SelectionAuto {
		return 0, false
	}
	p.gen++
	p.phase = PhaseScheduled
	log.Debug(log.CatClassify, "classification scheduled", "gen", p.gen)
	return p.gen, true
}

// FireDecision tells the caller what a debounce expiry amounts to.
type FireDecision int

const (
	// FireStale means a newer trigger superseded this timer. Do nothing.
	FireStale FireDecision = iota
	// FireResolved means the sample was blank and Detected is already
	// plain text. No classifier run is needed.
	FireResolved
	// FireClassify means the caller should run Classify over the returned
	// sample off the UI loop and report back via Complete with the same
	// generation.
	FireClassify
)

// Fire handles the debounce timer for generation gen expiring. The texts are
// the two buffers' contents at expiry; only a bounded prefix of each
// contributes to the sample.
func (p *Pipeline) Fire(gen int, originalText, modifiedText string) (FireDecision, string) {
	if gen != p.gen || p.phase != PhaseScheduled || p.selection != SelectionAuto {
		return FireStale, ""
	}
	sample := boundedPrefix(originalText) + "\n" + boundedPrefix(modifiedText)
	if strings.TrimSpace(sample) == "" {
		p.detected = TagPlainText
		p.phase = PhaseIdle
		log.Debug(log.CatClassify, "blank sample, plain text", "gen", gen)
		return FireResolved, ""
	}
	p.phase = PhaseClassifying
	return FireClassify, sample
}

// Classify runs the configured classifier over sample, restricted to the
// catalog's classifier tags. It touches no pipeline state and is safe to
// call from another goroutine.
func (p *Pipeline) Classify(sample string) (string, error) {
	return p.classifier.Classify(sample, ClassifierTags())
}

// Complete records the outcome of the classification started for gen.
// Stale generations are dropped. An error, an empty tag, or a tag outside
// the catalog all resolve to plain text. Returns whether Detected was
// (re)settled by this call.
func (p *Pipeline) Complete(gen int, tag string, err error) bool {
	if gen != p.gen || p.phase != PhaseClassifying || p.selection != SelectionAuto {
		return false
	}
	p.phase = PhaseIdle
	switch {
	case err != nil:
		log.Debug(log.CatClassify, "classifier failed, plain text", "gen", gen, "error", err)
		p.detected = TagPlainText
	case !IsConcrete(tag):
		p.detected = TagPlainText
	default:
		p.detected = tag
	}
	log.Debug(log.CatClassify, "detected", "gen", gen, "tag", p.detected)
	return true
}

// SetSelection records an explicit user choice. Any pending detection is
// cancelled and Detected keeps its last value. retrigger reports that the
// selection moved back to automatic, in which case the caller should
// Trigger against the current content.
func (p *Pipeline) SetSelection(v string) (changed, retrigger bool) {
	if !ValidSelection(v) || v == p.selection {
		return false, false
	}
	p.selection = v
	p.gen++
	p.phase = PhaseIdle
	return true, v == SelectionAuto
}

// boundedPrefix caps s at SampleLimit bytes without splitting a rune.
func boundedPrefix(s string) string {
	if len(s) <= SampleLimit {
		return s
	}
	cut := SampleLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
