// Пакет document — дерево исходного документа (XML/YAML/JSON), по которому
// парсер рейсов ищет узлы по имени тега. Текст узлов хранится как есть, без trim.
package document

// Node — элемент дерева: имя тега, собственный текст и дочерние элементы.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// Find — первый прямой потомок с именем name; nil, если его нет (в том числе для nil-узла).
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// FindText — текст первого прямого потомка name; ok=false, если потомка нет.
// Пустой элемент присутствует и возвращает "".
func (n *Node) FindText(name string) (string, bool) {
	child := n.Find(name)
	if child == nil {
		return "", false
	}
	return child.Text, true
}

// Descendants — все потомки с именем name на любой глубине в порядке документа.
// Сам узел не включается.
func (n *Node) Descendants(name string) []*Node {
	var out []*Node
	if n == nil {
		return out
	}
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, child := range cur.Children {
			if child.Name == name {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(n)
	return out
}
