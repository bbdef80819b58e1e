package frame

import "log/slog"

type Option func(*Codec)

func WithLogger(l *slog.Logger) Option        { return func(c *Codec) { c.log = l } }
func WithStrictDecode(on bool) Option         { return func(c *Codec) { c.strict = on } }
func WithClientTRID(gen func() string) Option { return func(c *Codec) { c.newTRID = gen } }
func WithIndent(n int) Option                 { return func(c *Codec) { c.indent = n } }
