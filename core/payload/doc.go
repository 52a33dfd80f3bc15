// Package payload isolates and decodes the compact scene payload that a
// language model embeds in free-form text.
//
// The compact shape looks like
//
//	{"s":{"ch":[{"c":"freud","t":"Hello.","ord":1,"a":"talking","sp":"normal"}]}}
//
// where every entry describes one actor turn. All fields except the actor,
// text and order are optional and are interpreted later by the vocabulary,
// expressions and timing packages.
package payload
