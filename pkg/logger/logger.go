package logger

// Logger описывает минимальный контракт структурированного логгера,
// чтобы бизнес-код не зависел от конкретной реализации (zap, slog и т.д.).
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

func NewField(key string, value interface{}) Field {
	return Field{
		Key:   key,
		Value: value,
	}
}
