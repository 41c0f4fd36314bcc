package track

import "sort"

// BankFunc maps a path parameter in [0,1] to a roll angle in radians.
type BankFunc func(t float32) float32

// BankKeyframe is one (parameter, angle) pair of a keyframed bank profile.
// T is a path parameter in [0,1]; Angle is in radians.
type BankKeyframe struct {
	T     float32
	Angle float32
}

// BankFromKeyframes builds a BankFunc that linearly interpolates between
// keyframes. Unsorted input is sorted by T, not rejected. With no
// keyframes the result is 0 everywhere; with one keyframe it is constant.
// Queries below the first or above the last keyframe clamp to the nearest
// endpoint's angle.
func BankFromKeyframes(keys []BankKeyframe) BankFunc {
	if len(keys) == 0 {
		return func(float32) float32 { return 0 }
	}

	sorted := make([]BankKeyframe, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })

	return func(t float32) float32 {
		if t <= sorted[0].T {
			return sorted[0].Angle
		}
		last := sorted[len(sorted)-1]
		if t >= last.T {
			return last.Angle
		}

		// Find the bracketing pair.
		hi := sort.Search(len(sorted), func(i int) bool { return sorted[i].T >= t })
		a, b := sorted[hi-1], sorted[hi]
		if b.T == a.T {
			return a.Angle
		}
		return a.Angle + (t-a.T)/(b.T-a.T)*(b.Angle-a.Angle)
	}
}
