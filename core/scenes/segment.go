package scenes

// TextRange is a half-open [Start, End) range of code point indices into a
// timeline's content.
type TextRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (r TextRange) Len() int { return r.End - r.Start }

// FaceState bundles the facial, gaze and effect sub-states of a segment.
// Empty fields leave the renderer's current state untouched.
type FaceState struct {
	Eyes     string `json:"eyes,omitempty" yaml:"eyes,omitempty"`
	Eyebrows string `json:"eyebrows,omitempty" yaml:"eyebrows,omitempty"`
	Mouth    string `json:"mouth,omitempty" yaml:"mouth,omitempty"`
	// Face is a decorative face marker such as a blush or sweat drop.
	Face     string `json:"face,omitempty" yaml:"face,omitempty"`
	Nose     string `json:"nose,omitempty" yaml:"nose,omitempty"`
	Cheek    string `json:"cheek,omitempty" yaml:"cheek,omitempty"`
	Forehead string `json:"forehead,omitempty" yaml:"forehead,omitempty"`
	Jaw      string `json:"jaw,omitempty" yaml:"jaw,omitempty"`
	Gaze     string `json:"gaze,omitempty" yaml:"gaze,omitempty"`
	Effect   string `json:"effect,omitempty" yaml:"effect,omitempty"`
}

func (f FaceState) IsZero() bool { return f == FaceState{} }

// Merge returns f with every non-empty field of over applied on top.
func (f FaceState) Merge(over FaceState) FaceState {
	merged := f
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&merged.Eyes, over.Eyes)
	set(&merged.Eyebrows, over.Eyebrows)
	set(&merged.Mouth, over.Mouth)
	set(&merged.Face, over.Face)
	set(&merged.Nose, over.Nose)
	set(&merged.Cheek, over.Cheek)
	set(&merged.Forehead, over.Forehead)
	set(&merged.Jaw, over.Jaw)
	set(&merged.Gaze, over.Gaze)
	set(&merged.Effect, over.Effect)
	return merged
}

// Segment is one atomic animation instruction.
type Segment struct {
	Animation string `json:"animation" yaml:"animation"`
	// Duration is in milliseconds.
	Duration  int  `json:"duration" yaml:"duration"`
	IsTalking bool `json:"isTalking" yaml:"is_talking"`
	// PlaybackSpeed is the animation playback speed derived from the speed
	// qualifier, 1.0 being normal.
	PlaybackSpeed float64    `json:"playbackSpeed,omitempty" yaml:"playback_speed,omitempty"`
	Face          *FaceState `json:"face,omitempty" yaml:"face,omitempty"`
	TextReveal    *TextRange `json:"textReveal,omitempty" yaml:"text_reveal,omitempty"`
	VoiceTone     string     `json:"voiceTone,omitempty" yaml:"voice_tone,omitempty"`
	ActionText    string     `json:"actionText,omitempty" yaml:"action_text,omitempty"`
}
