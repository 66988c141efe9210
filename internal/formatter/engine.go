package formatter

// Engine is the syntax-aware reformatting backend a formatter variant
// delegates to. The core never interprets profile handles or source levels
// itself; they are forwarded through Config.
type Engine interface {
	Format(source string, cfg *Config) (string, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(source string, cfg *Config) (string, error)

func (f EngineFunc) Format(source string, cfg *Config) (string, error) {
	return f(source, cfg)
}

// Passthrough returns an Engine that returns source text unchanged.
// It stands in where no real reformatting backend is linked; the header and
// line-ending passes still run over its output.
func Passthrough() Engine {
	return EngineFunc(func(source string, _ *Config) (string, error) {
		return source, nil
	})
}
