package model

// vocabulary maps the spellings of one classification axis to its variants.
// names[0] is the absent value and is never accepted by parse.
type vocabulary[T ~uint8] struct {
	axis   string
	names  []string
	lookup map[string]T
}

func newVocabulary[T ~uint8](axis string, names []string, aliases map[string]T) *vocabulary[T] {
	v := &vocabulary[T]{
		axis:   axis,
		names:  names,
		lookup: make(map[string]T, len(names)+len(aliases)),
	}
	for i := 1; i < len(names); i++ {
		v.lookup[names[i]] = T(i)
	}
	for s, t := range aliases {
		v.lookup[s] = t
	}
	return v
}

func (v *vocabulary[T]) parse(s string) (T, error) {
	if t, ok := v.lookup[s]; ok {
		return t, nil
	}
	return 0, &ErrUnknownVocabularyValue{Axis: v.axis, Value: s}
}

func (v *vocabulary[T]) name(t T) string {
	if int(t) < len(v.names) {
		return v.names[t]
	}
	return ""
}

func (v *vocabulary[T]) valid(t T) bool {
	return t != 0 && int(t) < len(v.names)
}

func (v *vocabulary[T]) unmarshal(dst *T, text []byte) error {
	if len(text) == 0 {
		*dst = 0
		return nil
	}
	t, err := v.parse(string(text))
	if err != nil {
		return err
	}
	*dst = t
	return nil
}
