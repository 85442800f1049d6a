package ml

// NumFeatures is the width of every vector the service hands to a model.
const NumFeatures = 3

// FeatureNames lists the request fields in model input order.
var FeatureNames = [NumFeatures]string{"correct", "time_ms", "hint_count"}

// FeatureVector is one student attempt.
type FeatureVector struct {
	Correct   float64
	TimeMs    float64
	HintCount float64
}

// Slice returns the single-row model input [correct, time_ms, hint_count].
func (fv FeatureVector) Slice() []float64 {
	return []float64{fv.Correct, fv.TimeMs, fv.HintCount}
}

func (fv FeatureVector) key() [NumFeatures]float64 {
	return [NumFeatures]float64{fv.Correct, fv.TimeMs, fv.HintCount}
}
