package payload

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Encode writes the payload back in the compact shape, omitting empty
// optional fields.
func Encode(p *Payload) (string, error) {
	doc := `{"s":{"ch":[]}}`
	for _, d := range p.Directives {
		entry, err := d.encode()
		if err != nil {
			return "", fmt.Errorf("failed to encode entry for %s: %w", d.Actor, err)
		}
		if doc, err = sjson.SetRaw(doc, "s.ch.-1", entry); err != nil {
			return "", fmt.Errorf("failed to append entry for %s: %w", d.Actor, err)
		}
	}
	return doc, nil
}

func (d Directive) encode() (string, error) {
	entry := "{}"
	var err error
	set := func(key string, value any) {
		if err == nil {
			entry, err = sjson.Set(entry, key, value)
		}
	}
	optional := func(key, value string) {
		if value != "" {
			set(key, value)
		}
	}

	set("c", d.Actor)
	set("t", d.Text)
	set("ord", d.Order)
	optional("a", d.Animation)
	optional("sp", d.Speed)
	optional("lk", d.Gaze)
	optional("ex", d.Expression)
	optional("ey", d.Eyes)
	optional("eb", d.Eyebrows)
	optional("m", d.Mouth)
	optional("fc", d.Face)
	optional("n", d.Nose)
	optional("ck", d.Cheek)
	optional("fh", d.Forehead)
	optional("j", d.Jaw)
	optional("fx", d.Effect)
	if d.Interrupt {
		set("int", true)
	}
	if len(d.Voice) > 0 {
		set("v", d.Voice)
	}
	return entry, err
}
