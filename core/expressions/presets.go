package expressions

import "github.com/koscakluka/ema-stage/core/scenes"

// Preset is a named bundle of facial sub-states representing a mood.
type Preset struct {
	Name     string
	Eyes     string
	Eyebrows string
	Mouth    string
	Face     string
	Nose     string
	Cheek    string
	Forehead string
	Jaw      string
}

// FaceState returns the preset as a face state with gaze and effect left
// unset.
func (p Preset) FaceState() scenes.FaceState {
	return scenes.FaceState{
		Eyes:     p.Eyes,
		Eyebrows: p.Eyebrows,
		Mouth:    p.Mouth,
		Face:     p.Face,
		Nose:     p.Nose,
		Cheek:    p.Cheek,
		Forehead: p.Forehead,
		Jaw:      p.Jaw,
	}
}

var presets = map[string]Preset{
	"neutral": {Name: "neutral", Eyes: "open", Eyebrows: "neutral", Mouth: "neutral"},
	"happy": {Name: "happy", Eyes: "squint", Eyebrows: "raised", Mouth: "smile",
		Cheek: "raised"},
	"joyful": {Name: "joyful", Eyes: "sparkle", Eyebrows: "raised", Mouth: "grin",
		Face: "sparkles", Cheek: "raised"},
	"excited": {Name: "excited", Eyes: "wide", Eyebrows: "raised", Mouth: "open",
		Face: "sparkles", Cheek: "raised", Jaw: "dropped"},
	"laughing": {Name: "laughing", Eyes: "closed", Eyebrows: "raised", Mouth: "laugh",
		Cheek: "raised", Jaw: "dropped"},
	"sad": {Name: "sad", Eyes: "half", Eyebrows: "sad", Mouth: "frown",
		Forehead: "wrinkled"},
	"heartbroken": {Name: "heartbroken", Eyes: "teary", Eyebrows: "worried", Mouth: "wavy",
		Face: "tears", Cheek: "sunken", Forehead: "shadow"},
	"crying": {Name: "crying", Eyes: "teary", Eyebrows: "sad", Mouth: "sad",
		Face: "tears", Nose: "sniff"},
	"angry": {Name: "angry", Eyes: "narrow", Eyebrows: "angry", Mouth: "teeth",
		Face: "anger_vein", Nose: "flared", Forehead: "wrinkled", Jaw: "clenched"},
	"furious": {Name: "furious", Eyes: "narrow", Eyebrows: "angry", Mouth: "teeth",
		Face: "anger_vein", Nose: "flared", Cheek: "puffed", Forehead: "shadow", Jaw: "jutted"},
	"annoyed": {Name: "annoyed", Eyes: "half", Eyebrows: "furrowed", Mouth: "tight",
		Jaw: "clenched"},
	"smug": {Name: "smug", Eyes: "half", Eyebrows: "one_raised", Mouth: "smirk",
		Cheek: "raised"},
	"proud": {Name: "proud", Eyes: "closed", Eyebrows: "raised", Mouth: "smirk",
		Jaw: "jutted"},
	"mischievous": {Name: "mischievous", Eyes: "narrow", Eyebrows: "one_raised", Mouth: "grin",
		Cheek: "raised"},
	"surprised": {Name: "surprised", Eyes: "wide", Eyebrows: "raised", Mouth: "open",
		Forehead: "wrinkled", Jaw: "dropped"},
	"shocked": {Name: "shocked", Eyes: "wide", Eyebrows: "raised", Mouth: "gasp",
		Face: "pale", Forehead: "wrinkled", Jaw: "slack"},
	"scared": {Name: "scared", Eyes: "wide", Eyebrows: "worried", Mouth: "wavy",
		Face: "pale", Forehead: "sweat"},
	"nervous": {Name: "nervous", Eyes: "open", Eyebrows: "worried", Mouth: "wavy",
		Face: "sweat", Forehead: "sweat"},
	"worried": {Name: "worried", Eyes: "open", Eyebrows: "worried", Mouth: "tight",
		Forehead: "wrinkled"},
	"disgusted": {Name: "disgusted", Eyes: "squint", Eyebrows: "furrowed", Mouth: "frown",
		Nose: "wrinkled", Cheek: "raised"},
	"confused": {Name: "confused", Eyes: "open", Eyebrows: "one_raised", Mouth: "pout",
		Forehead: "wrinkled"},
	"skeptical": {Name: "skeptical", Eyes: "narrow", Eyebrows: "one_raised", Mouth: "tight"},
	"thinking": {Name: "thinking", Eyes: "half", Eyebrows: "furrowed", Mouth: "pout",
		Forehead: "wrinkled"},
	"embarrassed": {Name: "embarrassed", Eyes: "half", Eyebrows: "worried", Mouth: "wavy",
		Face: "blush", Cheek: "blush"},
	"loving": {Name: "loving", Eyes: "heart", Eyebrows: "raised", Mouth: "smile",
		Face: "heart", Cheek: "blush"},
	"bored": {Name: "bored", Eyes: "half", Eyebrows: "neutral", Mouth: "tight",
		Cheek: "puffed"},
	"sleepy": {Name: "sleepy", Eyes: "sleepy", Eyebrows: "neutral", Mouth: "open",
		Jaw: "slack"},
	"determined": {Name: "determined", Eyes: "narrow", Eyebrows: "furrowed", Mouth: "tight",
		Jaw: "jutted"},
	"relieved": {Name: "relieved", Eyes: "closed", Eyebrows: "raised", Mouth: "smile",
		Face: "sweat"},
	"sarcastic": {Name: "sarcastic", Eyes: "rolled", Eyebrows: "one_raised", Mouth: "smirk"},
	"pouting": {Name: "pouting", Eyes: "half", Eyebrows: "furrowed", Mouth: "pout",
		Cheek: "puffed"},
}

// aliases maps casual or misspelled mood words onto preset names.
var aliases = map[string]string{
	"calm": "neutral", "normal": "neutral", "default": "neutral", "serious": "neutral",
	"content": "happy", "pleased": "happy", "cheerful": "happy", "glad": "happy", "smiling": "happy",
	"friendly": "happy", "warm": "happy", "amused": "happy", "hapy": "happy", "happpy": "happy",
	"delighted": "joyful", "elated": "joyful", "ecstatic": "joyful", "overjoyed": "joyful", "joy": "joyful",
	"thrilled": "excited", "enthusiastic": "excited", "eager": "excited", "hyped": "excited", "pumped": "excited",
	"exited": "excited", "excitd": "excited",
	"laugh": "laughing", "amused_laugh": "laughing", "giggling": "laughing", "lol": "laughing", "hilarious": "laughing",
	"unhappy": "sad", "down": "sad", "melancholy": "sad", "gloomy": "sad", "blue": "sad", "disappointed": "sad",
	"sorrowful": "sad", "upset": "sad",
	"heart_broken": "heartbroken", "devastated": "heartbroken", "grief": "heartbroken", "grieving": "heartbroken",
	"despair": "heartbroken", "crushed": "heartbroken",
	"tearful": "crying", "sobbing": "crying", "weeping": "crying", "cry": "crying", "in_tears": "crying",
	"mad": "angry", "irate": "angry", "cross": "angry", "hostile": "angry", "anger": "angry", "angery": "angry",
	"enraged": "furious", "livid": "furious", "raging": "furious", "rage": "furious", "outraged": "furious",
	"irritated": "annoyed", "grumpy": "annoyed", "frustrated": "annoyed", "exasperated": "annoyed", "impatient": "annoyed",
	"cocky": "smug", "self_satisfied": "smug", "arrogant": "smug", "superior": "smug", "condescending": "smug",
	"confident": "proud", "triumphant": "proud", "accomplished": "proud", "victorious": "proud",
	"playful": "mischievous", "sly": "mischievous", "cheeky": "mischievous", "devious": "mischievous", "teasing": "mischievous",
	"astonished": "surprised", "amazed": "surprised", "startled": "surprised", "surprise": "surprised", "wow": "surprised",
	"suprised": "surprised",
	"stunned": "shocked", "horrified": "shocked", "aghast": "shocked", "appalled": "shocked", "flabbergasted": "shocked",
	"afraid": "scared", "fearful": "scared", "frightened": "scared", "terrified": "scared", "fear": "scared", "panicked": "scared",
	"anxious": "nervous", "uneasy": "nervous", "tense": "nervous", "jittery": "nervous", "awkward": "nervous",
	"concerned": "worried", "troubled": "worried", "apprehensive": "worried",
	"disgust": "disgusted", "grossed_out": "disgusted", "repulsed": "disgusted", "revolted": "disgusted",
	"puzzled": "confused", "perplexed": "confused", "baffled": "confused", "lost": "confused", "bewildered": "confused",
	"doubtful": "skeptical", "suspicious": "skeptical", "unconvinced": "skeptical", "dubious": "skeptical",
	"sceptical": "skeptical",
	"pensive": "thinking", "thoughtful": "thinking", "contemplative": "thinking", "curious": "thinking",
	"pondering": "thinking", "reflective": "thinking", "analytical": "thinking",
	"shy": "embarrassed", "bashful": "embarrassed", "flustered": "embarrassed", "ashamed": "embarrassed",
	"sheepish": "embarrassed", "blushing": "embarrassed",
	"love": "loving", "affectionate": "loving", "adoring": "loving", "smitten": "loving", "in_love": "loving",
	"tender": "loving",
	"uninterested": "bored", "indifferent": "bored", "apathetic": "bored", "meh": "bored",
	"tired": "sleepy", "exhausted": "sleepy", "drowsy": "sleepy", "weary": "sleepy",
	"resolute": "determined", "focused": "determined", "intense": "determined", "stern": "determined",
	"relief": "relieved", "phew": "relieved", "reassured": "relieved",
	"ironic": "sarcastic", "mocking": "sarcastic", "eye_roll": "sarcastic", "dry": "sarcastic",
	"sulky": "pouting", "sulking": "pouting", "pout": "pouting", "petulant": "pouting",
}
