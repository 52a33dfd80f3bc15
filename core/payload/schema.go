package payload

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema of the compact payload, suitable for
// structured output requests.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Document{})
}
