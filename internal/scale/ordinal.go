package scale

// Ordinal assigns a palette entry to each key in first-seen order, cycling
// through the palette when keys outnumber colours.
type Ordinal struct {
	palette []string
	index   map[string]int
	keys    []string
}

// NewOrdinal returns an ordinal scale over palette, pre-registering keys in order.
func NewOrdinal(palette []string, keys ...string) *Ordinal {
	o := &Ordinal{
		palette: append([]string(nil), palette...),
		index:   make(map[string]int),
	}
	for _, k := range keys {
		o.Apply(k)
	}
	return o
}

// Apply returns the colour of key, assigning the next palette entry to keys
// not seen before. An empty palette yields "".
func (o *Ordinal) Apply(key string) string {
	if len(o.palette) == 0 {
		return ""
	}
	i, ok := o.index[key]
	if !ok {
		i = len(o.keys)
		o.index[key] = i
		o.keys = append(o.keys, key)
	}
	return o.palette[i%len(o.palette)]
}

// Domain returns the keys seen so far, in first-seen order.
func (o *Ordinal) Domain() []string {
	return append([]string(nil), o.keys...)
}

// Range returns the palette.
func (o *Ordinal) Range() []string {
	return append([]string(nil), o.palette...)
}
