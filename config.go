package sll

type FormatOption func(c *formatConfig)

type formatConfig struct {
	separator  string
	terminator string
	withIndex  bool
}

func defaultConfig() formatConfig {
	return formatConfig{
		separator:  " -> ",
		terminator: "NULL",
		withIndex:  true,
	}
}

// WithSeparator sets the string written between two nodes, and between the last node and the terminator.
func WithSeparator(separator string) FormatOption {
	return func(c *formatConfig) {
		c.separator = separator
	}
}

// WithTerminator sets the marker written after the last node (the default is "NULL").
// An empty list is formatted as the terminator alone.
func WithTerminator(terminator string) FormatOption {
	return func(c *formatConfig) {
		c.terminator = terminator
	}
}

// WithoutIndex specifies to write bare values instead of the default "Node[<index>]: <value>" form.
func WithoutIndex() FormatOption {
	return func(c *formatConfig) {
		c.withIndex = false
	}
}
