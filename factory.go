package eppmap

import "github.com/beevik/etree"

// DecodeMapped decodes el with the type lookup returns for its local name.
// el must be in ns; anything else is ErrNoMapping.
func DecodeMapped[T Element](ns Namespace, el *etree.Element, lookup func(local string) (T, error)) (T, error) {
	var zero T
	if el == nil {
		return zero, ErrNoMapping("<nil>")
	}
	if uri := NamespaceOf(el); uri != ns.URI {
		return zero, ErrNoMapping("{" + uri + "}" + el.Tag)
	}
	v, err := lookup(el.Tag)
	if err != nil {
		return zero, err
	}
	if err := v.Decode(el); err != nil {
		return zero, err
	}
	return v, nil
}
