package classify

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Classifier guesses the language of a text sample, restricted to a set of
// allowed tags. It returns the empty string when no allowed tag scores high
// enough.
type Classifier interface {
	Classify(sample string, allowed []string) (string, error)
}

// confidenceFloor is the minimum analyser score accepted as a match. Below
// it the sample is treated as unclassifiable.
const confidenceFloor = 0.05

// Chroma scores the sample with each allowed lexer's content analyser and
// picks the highest-scoring tag.
type Chroma struct{}

func (Chroma) Classify(sample string, allowed []string) (string, error) {
	best := ""
	var bestScore float32
	for _, tag := range allowed {
		lx := lexers.Get(tag)
		if lx == nil {
			continue
		}
		an, ok := lx.(chroma.Analyser)
		if !ok {
			continue
		}
		if score := an.AnalyseText(sample); score > bestScore {
			best, bestScore = tag, score
		}
	}
	if bestScore < confidenceFloor {
		return "", nil
	}
	return best, nil
}
