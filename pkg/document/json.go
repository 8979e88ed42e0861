package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// decodeJSON строит дерево по потоку токенов, чтобы сохранить порядок ключей.
// Правила отображения те же, что у YAML.
func decodeJSON(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	root := &Node{}
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch t := tok.(type) {
	case json.Delim:
		children, err := jsonContainer(dec, "", t)
		if err != nil {
			return nil, err
		}
		root.Children = children
	default:
		if text, ok := jsonScalar(t); ok {
			root.Text = text
		}
	}

	// гарантируем отсутствие данных после корневого значения
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformed)
	}
	return root, nil
}

// jsonContainer читает объект или массив после открывающего delim.
// Для массива элементы получают имя name.
func jsonContainer(dec *json.Decoder, name string, open json.Delim) ([]*Node, error) {
	var out []*Node
	for dec.More() {
		childName := name
		if open == '{' {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected object key %v", ErrMalformed, keyTok)
			}
			childName = key
		}

		nodes, err := jsonValue(dec, childName)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	// закрывающая скобка
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

func jsonValue(dec *json.Decoder, name string) ([]*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	delim, isDelim := tok.(json.Delim)
	if !isDelim {
		text, ok := jsonScalar(tok)
		if !ok {
			return nil, nil
		}
		return []*Node{{Name: name, Text: text}}, nil
	}

	children, err := jsonContainer(dec, name, delim)
	if err != nil {
		return nil, err
	}
	if delim == '[' {
		return children, nil
	}
	return []*Node{{Name: name, Children: children}}, nil
}

// jsonScalar — текст скаляра; ok=false для null.
func jsonScalar(tok json.Token) (string, bool) {
	switch v := tok.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	default:
		return fmt.Sprint(v), true
	}
}
