package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// decodeXML строит дерево по токенам encoding/xml. Текст элемента — символьные
// данные до первого дочернего элемента. Кодировка из XML-декларации
// (ISO-8859-1, windows-1251 и т.п.) перекодируется в UTF-8.
func decodeXML(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
		// seenChild — у вершины стека уже был дочерний элемент
		seenChild []bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("%w: junk after document element", ErrMalformed)
			}
			node := &Node{Name: elementName(t.Name)}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
				seenChild[len(seenChild)-1] = true
			}
			stack = append(stack, node)
			seenChild = append(seenChild, false)

		case xml.EndElement:
			// парность тегов проверяет сам декодер (Strict)
			stack = stack[:len(stack)-1]
			seenChild = seenChild[:len(seenChild)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("%w: text outside document element", ErrMalformed)
				}
				continue
			}
			if !seenChild[len(seenChild)-1] {
				top := stack[len(stack)-1]
				top.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no element found", ErrMalformed)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unclosed element %q", ErrMalformed, stack[len(stack)-1].Name)
	}
	return root, nil
}

// elementName — локальное имя; с пространством имён — в форме {space}local.
func elementName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}
