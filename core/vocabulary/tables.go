package vocabulary

type Field string

const (
	FieldAnimation Field = "animation"
	FieldGaze      Field = "gaze"
	FieldEyes      Field = "eyes"
	FieldEyebrows  Field = "eyebrows"
	FieldMouth     Field = "mouth"
	FieldFace      Field = "face"
	FieldNose      Field = "nose"
	FieldCheek     Field = "cheek"
	FieldForehead  Field = "forehead"
	FieldJaw       Field = "jaw"
	FieldEffect    Field = "effect"
	FieldSpeed     Field = "speed"
)

const (
	AnimationIdle        = "idle"
	AnimationTalking     = "talking"
	AnimationListening   = "listening"
	AnimationNod         = "nod"
	AnimationThinking    = "thinking"
	AnimationLeanForward = "lean_forward"

	GazeCenter           = "center"
	GazeAtLeftCharacter  = "at_left_character"
	GazeAtRightCharacter = "at_right_character"

	EyesOpen  = "open"
	EyesBlink = "blink"

	MouthSmile = "smile"

	SpeedNormal = "normal"
)

// Fields lists every vocabulary field in display order.
var Fields = []Field{
	FieldAnimation,
	FieldGaze,
	FieldEyes,
	FieldEyebrows,
	FieldMouth,
	FieldFace,
	FieldNose,
	FieldCheek,
	FieldForehead,
	FieldJaw,
	FieldEffect,
	FieldSpeed,
}

// Vocabulary is the closed set of values accepted for one field.
type Vocabulary struct {
	Field Field
	// Terms are the canonical values. Earlier terms win substring ties.
	Terms []string
	// Aliases map normalized informal spellings onto canonical terms.
	Aliases map[string]string
	Default string
}

var talkingAnimations = map[string]bool{
	"talking":         true,
	"talking_excited": true,
	"whisper":         true,
	"shout":           true,
}

var vocabularies = map[Field]Vocabulary{
	FieldAnimation: {
		Field: FieldAnimation,
		Terms: []string{
			"idle", "talking", "talking_excited", "whisper", "shout", "listening",
			"wave", "nod", "shake_head", "laugh", "cry", "shrug", "point",
			"thinking", "clap", "bow", "jump", "dance", "facepalm", "cross_arms",
			"lean_forward", "lean_back", "sigh", "celebrate", "scared", "angry",
		},
		Aliases: map[string]string{
			"talk": "talking", "speak": "talking", "speaking": "talking", "say": "talking",
			"excited_talking": "talking_excited", "animated_talking": "talking_excited",
			"whispering": "whisper", "yell": "shout", "yelling": "shout", "shouting": "shout", "scream": "shout",
			"listen": "listening", "attentive": "listening",
			"waving": "wave", "hello": "wave", "greet": "wave",
			"nodding": "nod", "agree": "nod",
			"head_shake": "shake_head", "shaking_head": "shake_head", "disagree": "shake_head",
			"laughing": "laugh", "giggle": "laugh", "chuckle": "laugh",
			"crying": "cry", "sob": "cry", "sobbing": "cry",
			"shrugging": "shrug", "pointing": "point",
			"think": "thinking", "ponder": "thinking", "pondering": "thinking", "hmm": "thinking",
			"clapping": "clap", "applause": "clap", "bowing": "bow",
			"jumping": "jump", "hop": "jump", "dancing": "dance",
			"face_palm": "facepalm", "arms_crossed": "cross_arms", "crossed_arms": "cross_arms",
			"lean_in": "lean_forward", "leaning_forward": "lean_forward", "lean_away": "lean_back",
			"sighing": "sigh", "cheer": "celebrate", "cheering": "celebrate", "victory": "celebrate",
			"afraid": "scared", "fear": "scared", "mad": "angry", "furious": "angry",
			"stand": "idle", "standing": "idle", "rest": "idle", "neutral": "idle", "none": "idle",
		},
		Default: AnimationIdle,
	},
	FieldGaze: {
		Field: FieldGaze,
		Terms: []string{
			"center", "left", "right", "up", "down",
			"at_left_character", "at_right_character", "away", "camera",
		},
		Aliases: map[string]string{
			"at_other": GazeAtLeftCharacter, "at_speaker": GazeAtLeftCharacter,
			"at_them": GazeAtLeftCharacter, "at_partner": GazeAtLeftCharacter,
			"other": GazeAtLeftCharacter, "speaker": GazeAtLeftCharacter,
			"look_left": "left", "look_right": "right", "look_up": "up", "look_down": "down",
			"straight": "center", "forward": "center", "front": "center", "ahead": "center",
			"at_camera": "camera", "viewer": "camera", "audience": "camera", "at_user": "camera",
			"look_away": "away", "elsewhere": "away",
		},
		Default: GazeCenter,
	},
	FieldEyes: {
		Field: FieldEyes,
		Terms: []string{
			"open", "closed", "half", "wide", "squint", "blink", "narrow",
			"sparkle", "teary", "rolled", "heart", "sleepy",
		},
		Aliases: map[string]string{
			"shut": "closed", "close": "closed", "half_closed": "half", "half_open": "half",
			"wide_open": "wide", "big": "wide", "squinting": "squint", "blinking": "blink",
			"sparkling": "sparkle", "shiny": "sparkle", "tears": "teary", "watery": "teary",
			"eye_roll": "rolled", "rolling": "rolled", "hearts": "heart", "tired": "sleepy",
			"normal": "open", "neutral": "open",
		},
		Default: EyesOpen,
	},
	FieldEyebrows: {
		Field: FieldEyebrows,
		Terms: []string{"neutral", "raised", "furrowed", "worried", "one_raised", "angry", "sad"},
		Aliases: map[string]string{
			"up": "raised", "lifted": "raised", "down": "furrowed", "frown": "furrowed",
			"knit": "furrowed", "skeptical": "one_raised", "quizzical": "one_raised",
			"concerned": "worried", "mad": "angry", "normal": "neutral",
		},
		Default: "neutral",
	},
	FieldMouth: {
		Field: FieldMouth,
		Terms: []string{
			"neutral", "smile", "grin", "frown", "open", "pout", "smirk",
			"gasp", "tight", "teeth", "laugh", "sad", "wavy",
		},
		Aliases: map[string]string{
			"smiling": "smile", "happy": "smile", "big_smile": "grin", "frowning": "frown",
			"o": "open", "agape": "open", "pouting": "pout", "smug": "smirk",
			"shocked": "gasp", "pressed": "tight", "flat": "tight", "closed": "neutral",
			"laughing": "laugh", "nervous": "wavy", "normal": "neutral",
		},
		Default: "neutral",
	},
	FieldFace: {
		Field: FieldFace,
		Terms: []string{"none", "blush", "sweat", "tears", "anger_vein", "sparkles", "shadow", "pale", "heart"},
		Aliases: map[string]string{
			"blushing": "blush", "sweating": "sweat", "sweat_drop": "sweat", "crying": "tears",
			"vein": "anger_vein", "angry": "anger_vein", "gloom": "shadow", "dark": "shadow",
			"white": "pale", "love": "heart", "neutral": "none", "normal": "none",
		},
		Default: "none",
	},
	FieldNose: {
		Field:   FieldNose,
		Terms:   []string{"neutral", "wrinkled", "flared", "sniff"},
		Aliases: map[string]string{"scrunched": "wrinkled", "disgust": "wrinkled", "flaring": "flared", "sniffing": "sniff", "normal": "neutral"},
		Default: "neutral",
	},
	FieldCheek: {
		Field:   FieldCheek,
		Terms:   []string{"neutral", "puffed", "blush", "sunken", "raised"},
		Aliases: map[string]string{"puffy": "puffed", "blushing": "blush", "red": "blush", "hollow": "sunken", "smile": "raised", "normal": "neutral"},
		Default: "neutral",
	},
	FieldForehead: {
		Field:   FieldForehead,
		Terms:   []string{"neutral", "wrinkled", "sweat", "shadow"},
		Aliases: map[string]string{"creased": "wrinkled", "furrowed": "wrinkled", "sweating": "sweat", "gloom": "shadow", "normal": "neutral"},
		Default: "neutral",
	},
	FieldJaw: {
		Field:   FieldJaw,
		Terms:   []string{"neutral", "dropped", "clenched", "jutted", "slack"},
		Aliases: map[string]string{"open": "dropped", "drop": "dropped", "tight": "clenched", "clench": "clenched", "forward": "jutted", "loose": "slack", "normal": "neutral"},
		Default: "neutral",
	},
	FieldEffect: {
		Field: FieldEffect,
		Terms: []string{
			"none", "sparkle", "rain_cloud", "hearts", "fire", "lightning", "confetti",
			"question_marks", "exclamation", "sweat_drops", "zzz", "music_notes",
		},
		Aliases: map[string]string{
			"sparkles": "sparkle", "glitter": "sparkle", "cloud": "rain_cloud", "gloom": "rain_cloud",
			"love": "hearts", "heart": "hearts", "flames": "fire", "rage": "fire",
			"shock": "lightning", "party": "confetti", "question": "question_marks", "confused": "question_marks",
			"surprise": "exclamation", "alert": "exclamation", "nervous": "sweat_drops",
			"sleep": "zzz", "sleeping": "zzz", "music": "music_notes", "singing": "music_notes",
			"no": "none", "neutral": "none",
		},
		Default: "none",
	},
	FieldSpeed: {
		Field: FieldSpeed,
		Terms: []string{"slow", "normal", "fast", "explosive"},
		Aliases: map[string]string{
			"slowly": "slow", "calm": "slow", "relaxed": "slow", "gentle": "slow", "leisurely": "slow",
			"medium": "normal", "regular": "normal", "moderate": "normal", "default": "normal",
			"quick": "fast", "quickly": "fast", "rapid": "fast", "hurried": "fast", "brisk": "fast",
			"very_fast": "explosive", "frantic": "explosive", "excited": "explosive", "burst": "explosive",
		},
		Default: SpeedNormal,
	},
}

// Lookup returns the vocabulary of a field.
func Lookup(field Field) (Vocabulary, bool) {
	v, ok := vocabularies[field]
	return v, ok
}

// IsTalking reports whether the canonical animation moves the mouth as
// speech.
func IsTalking(animation string) bool { return talkingAnimations[animation] }
