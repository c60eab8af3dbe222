package format

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/pairlist"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML outputs a pair list as an HTML table of class "pairlist", with a
// header row and one row per pair. Rows with a key comparing equal to the key
// of the row above carry class "dup".
func HTML[K, V any](w io.Writer, l *pairlist.List[K, V]) error {
	if w == nil || l == nil {
		return fmt.Errorf("%w: nil", pairlist.ErrIllegalArguments)
	}
	table := element(atom.Table, "class", "pairlist")
	head := element(atom.Tr)
	head.AppendChild(cell(atom.Th, "key"))
	head.AppendChild(cell(atom.Th, "value"))
	table.AppendChild(head)
	compare := l.Config().Compare
	var prev K
	i := 0
	for k, v := range l.All() {
		var row *html.Node
		if i > 0 && compare(prev, k) == 0 {
			row = element(atom.Tr, "class", "dup")
		} else {
			row = element(atom.Tr)
		}
		row.AppendChild(cell(atom.Td, fmt.Sprint(k)))
		row.AppendChild(cell(atom.Td, fmt.Sprint(v)))
		table.AppendChild(row)
		prev = k
		i++
	}
	tracer().Debugf("format: rendering %d rows as HTML", i)
	return html.Render(w, table)
}

// TableFromHTML reads an HTML document or fragment and collects the text of
// every table row with exactly two data cells into a pair list of strings.
// It reverses the output of HTML.
func TableFromHTML(input io.Reader, cmp func(a, b string) int) (*pairlist.List[string, string], error) {
	if input == nil || cmp == nil {
		return nil, fmt.Errorf("%w: nil", pairlist.ErrIllegalArguments)
	}
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	l := pairlist.New[string, string](cmp)
	collectRows(doc, l)
	return l, nil
}

func collectRows(n *html.Node, l *pairlist.List[string, string]) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
		var cells []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Td {
				var b strings.Builder
				collectText(c, &b)
				cells = append(cells, b.String())
			}
		}
		if len(cells) == 2 {
			l.Add(cells[0], cells[1])
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRows(c, l)
	}
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

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

func cell(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
