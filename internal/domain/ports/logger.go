package ports

// Logger é o log estruturado usado por services, handlers e infraestrutura.
// args são pares chave/valor: logger.Info("job created", "job_id", id).
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	// With devolve um logger que repete os pares em toda mensagem
	With(args ...any) Logger
}
