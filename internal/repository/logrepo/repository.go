package logrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"estocando/internal/domain"
	"estocando/internal/pkg/logger"
	"estocando/internal/repository"
)

// LogRepository acessa a tabela request_logs (somente inserção e leitura).
type LogRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewLogRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *LogRepository {
	return &LogRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

// Save grava uma entrada de log de requisição.
func (r *LogRepository) Save(ctx context.Context, entry domain.RequestLog) (domain.RequestLog, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctxTimeout, `
		INSERT INTO request_logs (id, method, path, status, duration_ms, ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.Method, entry.Path, entry.Status, entry.DurationMs,
		nullable(entry.IP), nullable(entry.UserAgent), entry.CreatedAt,
	)
	if err != nil {
		return domain.RequestLog{}, repository.TranslateError(err, "", "Falha ao gravar log de requisição")
	}
	return entry, nil
}

// FindRecent devolve os últimos logs, do mais novo para o mais antigo.
func (r *LogRepository) FindRecent(ctx context.Context, limit int) ([]domain.RequestLog, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `
		SELECT id, method, path, status, duration_ms, ip, user_agent, created_at
		FROM request_logs
		ORDER BY created_at DESC, id
		LIMIT $1`, limit)
	if err != nil {
		r.logger.Error("Falha ao listar logs de requisição no DB.", err)
		return nil, repository.TranslateError(err, "", "Falha ao listar logs")
	}
	defer rows.Close()

	logs := make([]domain.RequestLog, 0)
	for rows.Next() {
		var (
			l         domain.RequestLog
			ip, agent sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.Method, &l.Path, &l.Status, &l.DurationMs, &ip, &agent, &l.CreatedAt); err != nil {
			return nil, repository.TranslateError(err, "", "Falha ao ler log")
		}
		l.IP = ip.String
		l.UserAgent = agent.String
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.TranslateError(err, "", "Falha ao listar logs")
	}
	return logs, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
