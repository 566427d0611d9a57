package domain

// Limites dos relatórios.
const (
	DefaultRecentAdjustmentsLimit = 20
	DefaultLogsLimit              = 25
	MaxReportLimit                = 100

	// LogLimitMessage identifica o erro de faixa do relatório de logs.
	LogLimitMessage = "choose a log count between 1 and 100"
)
