package anim

import "sort"

// Prop names an animatable style property.
type Prop string

const (
	PropTop     Prop = "top"
	PropLeft    Prop = "left"
	PropWidth   Prop = "width"
	PropHeight  Prop = "height"
	PropScale   Prop = "scale"
	PropOpacity Prop = "opacity"
)

// Props is a set of numeric style values. Lengths are in pixels.
type Props map[Prop]float64

// Clone returns an independent copy of p.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the property names in p, sorted for stable iteration.
func (p Props) Keys() []Prop {
	keys := make([]Prop, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// normalize turns a keyframe list into one where every frame carries every
// animated property. A single keyframe is an implicit "to" frame and gets a
// leading frame taken from from. Missing values carry forward.
func normalize(frames []Props, from Props) []Props {
	if len(frames) == 0 {
		return nil
	}

	keys := map[Prop]struct{}{}
	for _, f := range frames {
		for k := range f {
			keys[k] = struct{}{}
		}
	}

	if len(frames) == 1 {
		frames = []Props{{}, frames[0]}
	}

	out := make([]Props, len(frames))
	prev := Props{}
	for k := range keys {
		prev[k] = from[k]
	}
	for i, f := range frames {
		cur := make(Props, len(keys))
		for k := range keys {
			if v, ok := f[k]; ok {
				cur[k] = v
			} else {
				cur[k] = prev[k]
			}
		}
		out[i] = cur
		prev = cur
	}
	return out
}

// sample interpolates evenly spaced keyframes at eased progress t.
func sample(frames []Props, t float64) Props {
	if len(frames) == 1 {
		return frames[0].Clone()
	}
	segments := float64(len(frames) - 1)
	pos := t * segments
	idx := int(pos)
	if idx >= len(frames)-1 {
		return frames[len(frames)-1].Clone()
	}
	if idx < 0 {
		idx = 0
	}
	local := pos - float64(idx)

	a, b := frames[idx], frames[idx+1]
	out := make(Props, len(a))
	for k, av := range a {
		out[k] = av + (b[k]-av)*local
	}
	return out
}
