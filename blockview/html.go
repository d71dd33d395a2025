package blockview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/bdeque"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the block layout of d as an HTML table to w.
//
// The table carries class "bdeque", every block row carries the name of its
// occupancy class ("underfull", "normal", "nearfull") as its class, so that
// the output may be styled with CSS.
func HTML[T any](w io.Writer, d *bdeque.Deque[T]) error {
	cfg := d.Config()
	table := element(atom.Table, "class", "bdeque")
	caption := element(atom.Caption)
	caption.AppendChild(text(fmt.Sprintf("%d elements in %d blocks (inf=%d, sup=%d)",
		d.Len(), d.BlockCount(), cfg.Sup()/4, cfg.Sup())))
	table.AppendChild(caption)
	thead := element(atom.Thead)
	thead.AppendChild(row(atom.Th, "block", "first", "size", "start", "front"))
	table.AppendChild(thead)
	tbody := element(atom.Tbody)
	for _, info := range d.Layout() {
		v, err := d.At(info.First)
		if err != nil {
			tracer().Errorf("block view: %s", err.Error())
			return err
		}
		tr := row(atom.Td,
			strconv.Itoa(info.Index),
			strconv.Itoa(info.First),
			strconv.Itoa(info.Size),
			strconv.Itoa(info.Start),
			fmt.Sprint(v))
		tr.Attr = append(tr.Attr, html.Attribute{Key: "class", Val: Classify(info.Size, cfg).String()})
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return html.Render(w, table)
}

func row(cell atom.Atom, values ...string) *html.Node {
	tr := element(atom.Tr)
	for _, v := range values {
		c := element(cell)
		c.AppendChild(text(v))
		tr.AppendChild(c)
	}
	return tr
}

// element creates an element node; attrs are key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
