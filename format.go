package sll

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Fprint writes a single-line trace of the list to w, followed by a newline.
// With the default options, a list holding 0 and 1 is written as
//
//	Node[0]: 0 -> Node[1]: 1 -> NULL
func Fprint(w io.Writer, head *Node, options ...FormatOption) error {
	bw := bufio.NewWriter(w)
	writeTrace(bw, head, options)
	if err := bw.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "writing list trace")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "writing list trace")
	}
	return nil
}

// Sprint formats the list the same way as Fprint, without the trailing newline.
func Sprint(head *Node, options ...FormatOption) string {
	var sb strings.Builder
	writeTrace(&sb, head, options)
	return sb.String()
}

// String implements fmt.Stringer with the default trace format, starting from n.
func (n *Node) String() string {
	return Sprint(n)
}

type stringWriter interface {
	WriteString(s string) (int, error)
}

// writeTrace ignores write errors; bufio.Writer keeps the first one and reports it on Flush,
// and strings.Builder never fails.
func writeTrace(w stringWriter, head *Node, options []FormatOption) {
	config := defaultConfig()
	for _, option := range options {
		option(&config)
	}

	index := 0
	for n := head; n != nil; n = n.next {
		if config.withIndex {
			_, _ = w.WriteString("Node[" + strconv.Itoa(index) + "]: ")
		}
		_, _ = w.WriteString(strconv.Itoa(n.Value))
		_, _ = w.WriteString(config.separator)
		index++
	}
	_, _ = w.WriteString(config.terminator)
}
