package composite

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[Component]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[Component]int),
		max:     1,
	}
}

func (ids nodeids) find(node Component) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node Component) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a component tree in Graphviz DOT format
// (for debugging purposes).
//
// A component handle held at more than one child position appears as a single
// DOT node with an edge per position (modulo "strict" edge de-duplication).
func Tree2Dot(root Component, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	err := Each(root, func(node Component, depth int) error {
		ID := ids.alloc(node)
		styles := nodeDotStyles(!node.IsComposite())
		if node.IsComposite() {
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, "Branch", styles)
			c, ok := node.(container)
			if !ok {
				return nil
			}
			children := c.Children()
			if len(children) == 0 {
				nilid := ID + 10000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				return nil
			}
			for _, child := range children {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		} else {
			label := fmt.Sprintf("“%s”", node.Operation())
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode(id int) string {
	s := "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
	return s
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
