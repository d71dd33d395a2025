package bdeque

import (
	"fmt"
	"io"
	"strings"
)

// Deque2Dot outputs the block structure of a deque in Graphviz DOT format
// (for debugging purposes).
//
// Every block is drawn as a box labelled with its size, the global index of
// its first element and a preview of that element. Blocks are colored by
// occupancy. The tail sentinel is drawn as an empty circle.
func Deque2Dot[T any](d *Deque[T], w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	sb.WriteString("\trankdir=LR;\n")
	cfg := d.Config()
	var nodelist, edgelist strings.Builder
	layout := d.Layout()
	for _, info := range layout {
		v, err := d.At(info.First)
		if err != nil {
			tracer().Errorf("deque DOT: %s", err.Error())
			return err
		}
		label := fmt.Sprintf("%d @%d\\n“%s”", info.Size, info.First, dotPreview(v))
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\" %s];\n", info.Index+1, label,
			blockDotStyles(info.Size, cfg))
		if info.Index > 0 {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\" [dir=both];\n", info.Index, info.Index+1)
		}
	}
	tailID := len(layout) + 1
	fmt.Fprintf(&nodelist, "\t\"%d\" %s;\n", tailID, tailNode())
	if len(layout) > 0 {
		fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\" [dir=both];\n", tailID-1, tailID)
	}
	sb.WriteString(nodelist.String())
	sb.WriteString(edgelist.String())
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func tailNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func blockDotStyles(size int, cfg Config) string {
	s := ",style=filled,shape=box"
	// scale occupancy onto the palette
	i := size * (len(hexcolors) - 1) / (cfg.Sup() - 1)
	if size < cfg.Inf {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[len(hexhlcolors)-1])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[i])
	}
	return s
}

func dotPreview(v any) string {
	s := fmt.Sprint(v)
	if r := []rune(s); len(r) > 12 {
		s = string(r[:12]) + "…"
	}
	return strings.NewReplacer(`"`, `\"`, `\`, `\\`, "\n", " ").Replace(s)
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
