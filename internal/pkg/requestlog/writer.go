package requestlog

import (
	"context"
	"time"

	"estocando/internal/domain"
	"estocando/internal/pkg/logger"
)

// Store persiste uma entrada de log.
type Store interface {
	Save(ctx context.Context, entry domain.RequestLog) (domain.RequestLog, error)
}

// Writer grava os logs de requisição em segundo plano.
// Enqueue nunca bloqueia; com o buffer cheio a entrada é descartada.
type Writer struct {
	store        Store
	logger       logger.Logger
	entries      chan domain.RequestLog
	writeTimeout time.Duration
}

// NewWriter cria o Writer com um buffer de tamanho bufferSize.
func NewWriter(store Store, bufferSize int, writeTimeout time.Duration, log logger.Logger) *Writer {
	return &Writer{
		store:        store,
		logger:       log,
		entries:      make(chan domain.RequestLog, bufferSize),
		writeTimeout: writeTimeout,
	}
}

// Enqueue entrega a entrada ao Writer. Devolve false se ela foi descartada.
func (w *Writer) Enqueue(entry domain.RequestLog) bool {
	select {
	case w.entries <- entry:
		return true
	default:
		w.logger.Warn("Buffer de logs de requisição cheio; entrada descartada.", map[string]interface{}{
			"method": entry.Method,
			"path":   entry.Path,
			"status": entry.Status,
		})
		return false
	}
}

// Run consome o buffer até ctx ser cancelado e então grava o que restou.
// Falhas de gravação são registradas e ignoradas.
func (w *Writer) Run(ctx context.Context) error {
	w.logger.Info("Writer de logs de requisição iniciado.", nil)
	for {
		select {
		case entry := <-w.entries:
			w.save(entry)
		case <-ctx.Done():
			w.drain()
			w.logger.Info("Writer de logs de requisição encerrado.", nil)
			return nil
		}
	}
}

func (w *Writer) drain() {
	for {
		select {
		case entry := <-w.entries:
			w.save(entry)
		default:
			return
		}
	}
}

func (w *Writer) save(entry domain.RequestLog) {
	// O contexto da requisição já terminou; cada gravação tem o próprio prazo.
	ctx, cancel := context.WithTimeout(context.Background(), w.writeTimeout)
	defer cancel()

	if _, err := w.store.Save(ctx, entry); err != nil {
		w.logger.Error("Falha ao gravar log de requisição.", err)
	}
}
