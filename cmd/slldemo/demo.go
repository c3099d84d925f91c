package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/motoki317/sll"
)

var errEmptyTerminator = errors.New("terminator must not be empty")

func runDemo(cCtx *cli.Context) error {
	if cCtx.String("terminator") == "" {
		return errEmptyTerminator
	}
	options := []sll.FormatOption{sll.WithTerminator(cCtx.String("terminator"))}
	if cCtx.Bool("compact") {
		options = append(options, sll.WithoutIndex())
	}
	return errors.Wrap(demo(cCtx.App.Writer, cCtx.IntSlice("values"), options), "running demo")
}

// tracer writes narration lines and list traces, and keeps the first write error.
type tracer struct {
	w       io.Writer
	options []sll.FormatOption
	err     error
}

func (t *tracer) say(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *tracer) print(head *sll.Node) {
	if t.err != nil {
		return
	}
	t.err = sll.Fprint(t.w, head, t.options...)
}

func demo(w io.Writer, values []int, options []sll.FormatOption) error {
	t := &tracer{w: w, options: options}

	var list1, list2 *sll.Node
	for _, v := range values {
		list1 = sll.InsertTail(list1, v)
		list2 = sll.InsertTail(list2, v)
	}

	list1 = sll.InsertHead(list1, 0)
	list1 = sll.InsertHead(list1, 42)
	list1 = sll.InsertTail(list1, 42)
	t.print(list1)

	t.say("Delete head node")
	list1 = sll.DeleteHead(list1)
	t.print(list1)

	t.say("Delete tail node")
	list1 = sll.DeleteTail(list1)
	t.print(list1)

	for _, value := range []int{2, 0, 4} {
		t.say("Delete first matching node with value: %d", value)
		list1, _ = sll.DeleteFirstMatch(list1, value)
		t.print(list1)
	}

	value := 42
	t.say("Attempt to delete first matching node with value: %d", value)
	list1, _ = sll.DeleteFirstMatch(list1, value)
	t.print(list1)

	for _, after := range []int{3, 99} {
		t.say("Insert node with value: %d after node with value: %d", value, after)
		list1 = sll.InsertAfterValue(list1, value, after)
		t.print(list1)
	}

	t.say("Insert node with value: %d in various places", value)
	list1 = sll.InsertHead(list1, value)
	list1 = sll.InsertAfterValue(list1, value, 0)
	list1 = sll.InsertAfterValue(list1, value, 0)
	list1 = sll.InsertTail(list1, value)
	t.print(list1)

	t.say("Length of list_1: %d", sll.Len(list1))
	t.say("Number of occurrences of nodes with value: %d = %d", value, sll.Count(list1, value))

	t.say("Delete all matching nodes with value: %d", value)
	list1, _ = sll.DeleteAllMatches(list1, value)
	t.print(list1)

	t.say("Swap node values with indexes: 2 and 0")
	sll.SwapValuesByIndex(list1, 2, 0)
	t.print(list1)

	t.say("Rebuild linked list")
	list1 = sll.DeleteAll(list1)
	for _, v := range values {
		list1 = sll.InsertTail(list1, v)
	}
	t.print(list1)

	t.say("Reverse list_1")
	list1 = sll.Reverse(list1)
	t.print(list1)

	t.say("Append list_2 to list_1")
	list1 = sll.Append(list1, &list2)
	t.print(list1)

	sll.DeleteAll(list1)
	return t.err
}
