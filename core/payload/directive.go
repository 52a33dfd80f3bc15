package payload

// Payload is a decoded compact payload.
type Payload struct {
	// Directives are sorted by order, ties keep payload order.
	Directives []Directive
}

// Directive is one actor turn as written by the model. Every field except
// Order and Interrupt is kept as the raw string.
type Directive struct {
	// Index is the position of the entry in the payload.
	Index int `json:"-"`

	Actor string `json:"c" jsonschema:"title=Actor,description=Roster id or name of the speaking actor"`
	Text  string `json:"t" jsonschema:"title=Text,description=Dialogue text; stage directions go between asterisks"`
	Order int    `json:"ord" jsonschema:"title=Order,description=Speaking order starting at 1,minimum=1"`

	Animation  string `json:"a,omitempty" jsonschema:"title=Animation,description=Body animation"`
	Speed      string `json:"sp,omitempty" jsonschema:"title=Speed,enum=slow,enum=normal,enum=fast,enum=explosive"`
	Gaze       string `json:"lk,omitempty" jsonschema:"title=Gaze,description=Gaze direction"`
	Expression string `json:"ex,omitempty" jsonschema:"title=Expression,description=Mood preset name"`
	Eyes       string `json:"ey,omitempty" jsonschema:"title=Eyes"`
	Eyebrows   string `json:"eb,omitempty" jsonschema:"title=Eyebrows"`
	Mouth      string `json:"m,omitempty" jsonschema:"title=Mouth"`
	Face       string `json:"fc,omitempty" jsonschema:"title=Face,description=Decorative face marker"`
	Nose       string `json:"n,omitempty" jsonschema:"title=Nose"`
	Cheek      string `json:"ck,omitempty" jsonschema:"title=Cheek"`
	Forehead   string `json:"fh,omitempty" jsonschema:"title=Forehead"`
	Jaw        string `json:"j,omitempty" jsonschema:"title=Jaw"`
	Effect     string `json:"fx,omitempty" jsonschema:"title=Effect,description=Visual effect"`
	Interrupt  bool   `json:"int,omitempty" jsonschema:"title=Interrupt,description=Starts before the previous speaker finishes"`

	Voice map[string]string `json:"v,omitempty" jsonschema:"title=Voice,description=Voice hints passed to speech synthesis"`
}

// Document is the top level shape of the compact payload.
type Document struct {
	Scene struct {
		Characters []Directive `json:"ch" jsonschema:"minItems=1"`
	} `json:"s"`
}
